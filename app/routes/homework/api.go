package homework

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetHomeworkBySessionAPI(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	assignments, err := store.HomeworkByClassSession(sessionID)
	if err != nil {
		log.Printf("Error fetching homework for session %d: %v", sessionID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch homework"})
	}
	return c.JSON(assignments)
}

type homeworkRequest struct {
	ClassSessionID int    `json:"classSessionId" validate:"required,gt=0"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	DueDate        string `json:"dueDate" validate:"required"`
}

func CreateHomeworkAPI(c *fiber.Ctx) error {
	var req homeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date"})
	}

	if _, err := store.ClassSession(req.ClassSessionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class session not found"})
		}
		log.Printf("Error looking up session %d: %v", req.ClassSessionID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	hw := models.Homework{
		ClassSessionID: req.ClassSessionID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dueDate,
	}
	if err := store.CreateHomework(&hw); err != nil {
		log.Printf("Error creating homework: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create homework"})
	}
	return c.Status(201).JSON(hw)
}

func UpdateHomeworkAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}

	var req homeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date"})
	}

	hw := models.Homework{
		ID:             id,
		ClassSessionID: req.ClassSessionID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dueDate,
	}
	if err := store.UpdateHomework(&hw); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Homework not found"})
		}
		log.Printf("Error updating homework %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update homework"})
	}
	return c.JSON(hw)
}
