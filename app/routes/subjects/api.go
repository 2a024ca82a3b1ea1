package subjects

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
)

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := store.Subjects()
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(subjects)
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type subjectRequest struct {
		Name  string `json:"name" validate:"required"`
		Color string `json:"color" validate:"required,hexcolor"`
	}

	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	subject := models.Subject{Name: req.Name, Color: req.Color}
	if err := store.CreateSubject(&subject); err != nil {
		log.Printf("Error creating subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(subject)
}
