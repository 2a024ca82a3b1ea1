package attendance

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/helpers"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func GetAttendanceBySessionAPI(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.InvalidParam(c, "id")
	}
	records, err := store.AttendanceByClassSession(sessionID)
	if err != nil {
		log.Printf("Error fetching attendance for session %d: %v", sessionID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(records)
}

type attendanceRequest struct {
	ClassSessionID int    `json:"classSessionId" validate:"required,gt=0"`
	StudentID      int    `json:"studentId" validate:"required,gt=0"`
	Status         string `json:"status" validate:"required"`
}

func (r attendanceRequest) record(now time.Time) (models.AttendanceRecord, error) {
	status := models.AttendanceStatus(r.Status)
	if !status.Valid() {
		return models.AttendanceRecord{}, fmt.Errorf("invalid status %q", r.Status)
	}
	return models.AttendanceRecord{
		ClassSessionID: r.ClassSessionID,
		StudentID:      r.StudentID,
		Status:         status,
		Timestamp:      now,
	}, nil
}

// RecordAttendanceAPI marks a single student. Resubmitting the same student
// for the same session replaces the stored status rather than duplicating it.
func RecordAttendanceAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return helpers.ValidationError(c, fields)
	}

	record, err := req.record(time.Now().UTC())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be present, absent or late"})
	}

	saved, err := store.SaveAttendanceBatch([]models.AttendanceRecord{record})
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return c.Status(201).JSON(saved[0])
}

// RecordAttendanceBatchAPI saves a full roster in one call. The batch is
// all-or-nothing: one bad record rejects the whole submission. The body is
// either {"records": [...]} or a bare array.
func RecordAttendanceBatchAPI(c *fiber.Ctx) error {
	var wrapped struct {
		Records []attendanceRequest `json:"records"`
	}
	var reqs []attendanceRequest
	if err := json.Unmarshal(c.Body(), &wrapped); err == nil {
		reqs = wrapped.Records
	} else if err := json.Unmarshal(c.Body(), &reqs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(reqs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Attendance batch is empty"})
	}

	now := time.Now().UTC()
	records := make([]models.AttendanceRecord, len(reqs))
	for i, req := range reqs {
		if fields := helpers.ValidateStruct(req); fields != nil {
			return helpers.ValidationError(c, fields)
		}
		record, err := req.record(now)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Status must be present, absent or late"})
		}
		records[i] = record
	}

	saved, err := store.SaveAttendanceBatch(records)
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return c.Status(201).JSON(saved)
}

func writeAttendanceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Class session not found"})
	}
	log.Printf("Error saving attendance: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
}
