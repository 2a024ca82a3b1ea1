package settings

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := store.Settings()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Settings not configured"})
		}
		log.Printf("Error fetching settings: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

func SaveSettingsAPI(c *fiber.Ctx) error {
	type settingsRequest struct {
		SchoolName        string `json:"schoolName" validate:"required"`
		SemesterStartDate string `json:"semesterStartDate" validate:"required"`
		SemesterEndDate   string `json:"semesterEndDate" validate:"required"`
	}

	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	start, err := helpers.ParseDate(req.SemesterStartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid semester start date"})
	}
	end, err := helpers.ParseDate(req.SemesterEndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid semester end date"})
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be on or after start date"})
	}

	settings := models.Settings{
		SchoolName:        req.SchoolName,
		SemesterStartDate: models.SessionDate(start),
		SemesterEndDate:   models.SessionDate(end),
	}
	if err := store.SaveSettings(&settings); err != nil {
		log.Printf("Error saving settings: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
	}
	return c.JSON(settings)
}
