package substitutions

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetSubstitutionsAPI(c *fiber.Ctx) error {
	subs, err := store.Substitutions()
	if err != nil {
		log.Printf("Error fetching substitutions: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch substitutions"})
	}
	return c.JSON(subs)
}

// GetSubstitutionsByTeacherAPI lists substitutions where the teacher appears
// on either side, as original or as substitute.
func GetSubstitutionsByTeacherAPI(c *fiber.Ctx) error {
	teacherID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	subs, err := store.SubstitutionsByTeacher(teacherID)
	if err != nil {
		log.Printf("Error fetching substitutions for teacher %d: %v", teacherID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch substitutions"})
	}
	return c.JSON(subs)
}

func CreateSubstitutionAPI(c *fiber.Ctx) error {
	type substitutionRequest struct {
		OriginalTeacherID   int     `json:"originalTeacherId" validate:"required,gt=0"`
		SubstituteTeacherID int     `json:"substituteTeacherId" validate:"required,gt=0"`
		StartDate           string  `json:"startDate" validate:"required"`
		EndDate             string  `json:"endDate" validate:"required"`
		Reason              *string `json:"reason"`
	}

	var req substitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date"})
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
	}
	if endDate.Before(startDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be on or after start date"})
	}
	if req.OriginalTeacherID == req.SubstituteTeacherID {
		return c.Status(400).JSON(fiber.Map{"error": "Substitute must differ from the original teacher"})
	}

	for _, teacherID := range []int{req.OriginalTeacherID, req.SubstituteTeacherID} {
		if _, err := store.User(teacherID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
			}
			log.Printf("Error looking up teacher %d: %v", teacherID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	sub := models.Substitution{
		OriginalTeacherID:   req.OriginalTeacherID,
		SubstituteTeacherID: req.SubstituteTeacherID,
		StartDate:           models.SessionDate(startDate),
		EndDate:             models.SessionDate(endDate),
		Reason:              req.Reason,
	}
	if err := store.CreateSubstitution(&sub); err != nil {
		log.Printf("Error creating substitution: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create substitution"})
	}
	return c.Status(201).JSON(sub)
}
