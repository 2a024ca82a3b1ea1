package timetable

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/scheduling"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetTimetableAPI(c *fiber.Ctx) error {
	entries, err := store.TimetableEntries()
	if err != nil {
		log.Printf("Error fetching timetable: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(entries)
}

func GetTimetableByTeacherAPI(c *fiber.Ctx) error {
	teacherID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	entries, err := store.TimetableEntriesByTeacher(teacherID)
	if err != nil {
		log.Printf("Error fetching timetable for teacher %d: %v", teacherID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(entries)
}

func GetTimetableByDayAPI(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return helpers.InvalidParam(c, "day")
	}
	if !scheduling.ValidDayOfWeek(day) {
		return c.Status(400).JSON(fiber.Map{"error": "Day of week must be between 0 (Sunday) and 6 (Saturday)"})
	}
	entries, err := store.TimetableEntriesByDay(day)
	if err != nil {
		log.Printf("Error fetching timetable for day %d: %v", day, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(entries)
}

type entryRequest struct {
	TeacherID    int     `json:"teacherId" validate:"required,gt=0"`
	ClassID      *int    `json:"classId"`
	SubjectID    *int    `json:"subjectId"`
	TimeSlotID   int     `json:"timeSlotId" validate:"required,gt=0"`
	DayOfWeek    *int    `json:"dayOfWeek" validate:"required"`
	RoomNumber   *string `json:"roomNumber"`
	IsFreePeriod bool    `json:"isFreePeriod"`
}

// input builds the validated entry candidate. Free periods drop class,
// subject and room by construction.
func (r entryRequest) input() scheduling.EntryInput {
	if r.IsFreePeriod {
		return scheduling.FreePeriod{
			TeacherID:  r.TeacherID,
			TimeSlotID: r.TimeSlotID,
			DayOfWeek:  *r.DayOfWeek,
		}
	}
	return scheduling.Lesson{
		TeacherID:  r.TeacherID,
		TimeSlotID: r.TimeSlotID,
		DayOfWeek:  *r.DayOfWeek,
		ClassID:    r.ClassID,
		SubjectID:  r.SubjectID,
		RoomNumber: r.RoomNumber,
	}
}

func CreateTimetableEntryAPI(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	input := req.input()
	if err := input.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	entry := input.Entry()
	if err := store.CreateTimetableEntry(&entry); err != nil {
		return writeEntryError(c, err)
	}
	return c.Status(201).JSON(entry)
}

type entryUpdateRequest struct {
	TeacherID    *int    `json:"teacherId"`
	TimeSlotID   *int    `json:"timeSlotId"`
	ClassID      *int    `json:"classId"`
	SubjectID    *int    `json:"subjectId"`
	DayOfWeek    *int    `json:"dayOfWeek"`
	RoomNumber   *string `json:"roomNumber"`
	IsFreePeriod *bool   `json:"isFreePeriod"`
}

func UpdateTimetableEntryAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}

	var req entryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	existing, err := store.TimetableEntry(id)
	if err != nil {
		return writeEntryError(c, err)
	}

	// Teacher and time slot are fixed once the entry exists.
	if req.TeacherID != nil && *req.TeacherID != existing.TeacherID {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher cannot be changed on an existing entry"})
	}
	if req.TimeSlotID != nil && *req.TimeSlotID != existing.TimeSlotID {
		return c.Status(400).JSON(fiber.Map{"error": "Time slot cannot be changed on an existing entry"})
	}

	merged := entryRequest{
		TeacherID:    existing.TeacherID,
		TimeSlotID:   existing.TimeSlotID,
		ClassID:      existing.ClassID,
		SubjectID:    existing.SubjectID,
		DayOfWeek:    &existing.DayOfWeek,
		RoomNumber:   existing.RoomNumber,
		IsFreePeriod: existing.IsFreePeriod,
	}
	if req.ClassID != nil {
		merged.ClassID = req.ClassID
	}
	if req.SubjectID != nil {
		merged.SubjectID = req.SubjectID
	}
	if req.DayOfWeek != nil {
		merged.DayOfWeek = req.DayOfWeek
	}
	if req.RoomNumber != nil {
		merged.RoomNumber = req.RoomNumber
	}
	if req.IsFreePeriod != nil {
		merged.IsFreePeriod = *req.IsFreePeriod
	}

	input := merged.input()
	if err := input.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	entry := input.Entry()
	entry.ID = id
	if err := store.UpdateTimetableEntry(&entry); err != nil {
		return writeEntryError(c, err)
	}
	return c.JSON(entry)
}

func DeleteTimetableEntryAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	if err := store.DeleteTimetableEntry(id); err != nil {
		return writeEntryError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func writeEntryError(c *fiber.Ctx, err error) error {
	var conflictErr *storage.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		return c.Status(409).JSON(fiber.Map{
			"error":     "Scheduling conflict",
			"conflicts": conflictErr.Conflicts,
		})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Timetable entry not found"})
	default:
		log.Printf("Timetable entry write failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
