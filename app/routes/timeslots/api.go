package timeslots

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/scheduling"
)

func GetTimeSlotsAPI(c *fiber.Ctx) error {
	slots, err := store.TimeSlots()
	if err != nil {
		log.Printf("Error fetching time slots: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch time slots"})
	}
	return c.JSON(slots)
}

func CreateTimeSlotAPI(c *fiber.Ctx) error {
	type timeSlotRequest struct {
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
		Label     string `json:"label" validate:"required"`
	}

	var req timeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}
	if !scheduling.ValidSlotTimes(req.StartTime, req.EndTime) {
		return c.Status(400).JSON(fiber.Map{"error": "Times must be HH:MM with start before end"})
	}

	slot := models.TimeSlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Label:     req.Label,
	}
	if err := store.CreateTimeSlot(&slot); err != nil {
		log.Printf("Error creating time slot: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create time slot"})
	}
	return c.Status(201).JSON(slot)
}
