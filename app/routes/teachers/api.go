package teachers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := store.Teachers()
	if err != nil {
		log.Printf("Error fetching teachers: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(teachers)
}

func GetTeacherAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	teacher, err := store.User(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		log.Printf("Error fetching teacher %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}
	return c.JSON(teacher)
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	type teacherRequest struct {
		Username  string   `json:"username" validate:"required"`
		Password  string   `json:"password" validate:"required,min=8"`
		Email     string   `json:"email" validate:"required,email"`
		FirstName string   `json:"firstName" validate:"required"`
		LastName  string   `json:"lastName" validate:"required"`
		Subjects  []string `json:"subjects"`
	}

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	if _, err := store.UserByUsername(req.Username); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "Username already taken"})
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Error checking username: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	teacher := models.User{
		Username:  req.Username,
		Password:  hash,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleTeacher,
		Subjects:  req.Subjects,
	}
	if err := store.CreateUser(&teacher); err != nil {
		log.Printf("Error creating teacher: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}
	return c.Status(201).JSON(teacher)
}
