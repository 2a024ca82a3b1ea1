package scheduling

import (
	"errors"
	"strings"

	"github.com/dclocky/SchoolPulse/app/models"
)

var (
	ErrInvalidDay      = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrMissingTeacher  = errors.New("teacher is required")
	ErrMissingTimeSlot = errors.New("time slot is required")
)

// EntryInput is a validated timetable entry candidate, either a Lesson or a
// FreePeriod. Building entries through these two variants keeps the
// free-period invariant (no class, subject or room) out of handler code.
type EntryInput interface {
	Entry() models.TimetableEntry
	Validate() error
}

// Lesson assigns a teacher to a slot, optionally with a class, subject and room.
type Lesson struct {
	TeacherID  int
	TimeSlotID int
	DayOfWeek  int
	ClassID    *int
	SubjectID  *int
	RoomNumber *string
}

func (l Lesson) Entry() models.TimetableEntry {
	room := l.RoomNumber
	if room != nil && *room == "" {
		room = nil
	}
	return models.TimetableEntry{
		TeacherID:    l.TeacherID,
		ClassID:      l.ClassID,
		SubjectID:    l.SubjectID,
		TimeSlotID:   l.TimeSlotID,
		DayOfWeek:    l.DayOfWeek,
		RoomNumber:   room,
		IsFreePeriod: false,
	}
}

func (l Lesson) Validate() error {
	return validateSlot(l.TeacherID, l.TimeSlotID, l.DayOfWeek)
}

// FreePeriod marks a teacher's slot as prep time or lunch. It carries no
// class, subject or room by construction.
type FreePeriod struct {
	TeacherID  int
	TimeSlotID int
	DayOfWeek  int
}

func (f FreePeriod) Entry() models.TimetableEntry {
	return models.TimetableEntry{
		TeacherID:    f.TeacherID,
		TimeSlotID:   f.TimeSlotID,
		DayOfWeek:    f.DayOfWeek,
		IsFreePeriod: true,
	}
}

func (f FreePeriod) Validate() error {
	return validateSlot(f.TeacherID, f.TimeSlotID, f.DayOfWeek)
}

func validateSlot(teacherID, timeSlotID, dayOfWeek int) error {
	if teacherID <= 0 {
		return ErrMissingTeacher
	}
	if timeSlotID <= 0 {
		return ErrMissingTimeSlot
	}
	if !ValidDayOfWeek(dayOfWeek) {
		return ErrInvalidDay
	}
	return nil
}

// ValidDayOfWeek accepts 0 (Sunday) through 6 (Saturday).
func ValidDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

// ValidTimeFormat validates a fixed-width 24h "HH:MM" string.
func ValidTimeFormat(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	for _, part := range parts {
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return timeStr < "24:00" && parts[1] < "60"
}

// ValidSlotTimes reports whether start precedes end. Lexicographic comparison
// is correct because the format is fixed-width 24h.
func ValidSlotTimes(start, end string) bool {
	return ValidTimeFormat(start) && ValidTimeFormat(end) && start < end
}
