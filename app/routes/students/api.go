package students

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := store.Students()
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func GetStudentsByClassAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	students, err := store.StudentsByClass(classID)
	if err != nil {
		log.Printf("Error fetching students for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func GetStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	student, err := store.Student(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("Error fetching student %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type studentRequest struct {
		FirstName string  `json:"firstName" validate:"required"`
		LastName  string  `json:"lastName" validate:"required"`
		ClassID   int     `json:"classId" validate:"required,gt=0"`
		Email     *string `json:"email" validate:"omitempty,email"`
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	if _, err := store.Class(req.ClassID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		log.Printf("Error looking up class %d: %v", req.ClassID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	student := models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ClassID:   req.ClassID,
		Email:     req.Email,
	}
	if err := store.CreateStudent(&student); err != nil {
		log.Printf("Error creating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(student)
}
