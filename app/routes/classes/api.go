package classes

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classList, err := store.Classes()
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(classList)
}

func GetClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	class, err := store.Class(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		log.Printf("Error fetching class %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}
	return c.JSON(class)
}

func CreateClassAPI(c *fiber.Ctx) error {
	type classRequest struct {
		Name       string  `json:"name" validate:"required"`
		Grade      string  `json:"grade" validate:"required"`
		Section    string  `json:"section" validate:"required"`
		RoomNumber *string `json:"roomNumber"`
	}

	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	class := models.Class{
		Name:       req.Name,
		Grade:      req.Grade,
		Section:    req.Section,
		RoomNumber: req.RoomNumber,
	}
	if err := store.CreateClass(&class); err != nil {
		log.Printf("Error creating class: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}
	return c.Status(201).JSON(class)
}
