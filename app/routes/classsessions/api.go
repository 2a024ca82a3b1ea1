package classsessions

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetClassSessionsAPI(c *fiber.Ctx) error {
	sessions, err := store.ClassSessions()
	if err != nil {
		log.Printf("Error fetching class sessions: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class sessions"})
	}
	return c.JSON(sessions)
}

func GetClassSessionsByEntryAPI(c *fiber.Ctx) error {
	entryID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	sessions, err := store.ClassSessionsByTimetableEntry(entryID)
	if err != nil {
		log.Printf("Error fetching sessions for entry %d: %v", entryID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class sessions"})
	}
	return c.JSON(sessions)
}

func GetClassSessionAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	session, err := store.ClassSession(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class session not found"})
		}
		log.Printf("Error fetching class session %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class session"})
	}
	return c.JSON(session)
}

// GetOrCreateClassSessionAPI resolves the session for a timetable entry on a
// given date, creating an empty one on first access. Repeated calls with the
// same entry and date return the same session.
func GetOrCreateClassSessionAPI(c *fiber.Ctx) error {
	type sessionRequest struct {
		TimetableEntryID int    `json:"timetableEntryId" validate:"required,gt=0"`
		Date             string `json:"date" validate:"required"`
	}

	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
	}

	if _, err := store.TimetableEntry(req.TimetableEntryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Timetable entry not found"})
		}
		log.Printf("Error looking up entry %d: %v", req.TimetableEntryID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	session, created, err := store.GetOrCreateClassSession(req.TimetableEntryID, models.SessionDate(date))
	if err != nil {
		log.Printf("Error resolving class session: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve class session"})
	}
	if created {
		return c.Status(201).JSON(session)
	}
	return c.JSON(session)
}

func UpdateClassSessionAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}

	type updateRequest struct {
		Notes      *string `json:"notes"`
		LessonPlan *string `json:"lessonPlan"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	session, err := store.UpdateClassSession(id, req.Notes, req.LessonPlan)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class session not found"})
		}
		log.Printf("Error updating class session %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class session"})
	}
	return c.JSON(session)
}
