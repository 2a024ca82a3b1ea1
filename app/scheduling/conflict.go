package scheduling

import "github.com/dclocky/SchoolPulse/app/models"

// ConflictType identifies which resource is double-booked.
type ConflictType string

const (
	TeacherConflict ConflictType = "teacher"
	ClassConflict   ConflictType = "class"
	RoomConflict    ConflictType = "room"
)

// Conflict is one reason a candidate timetable entry cannot be committed.
type Conflict struct {
	Type    ConflictType `json:"type"`
	Message string       `json:"message"`
}

const (
	MsgTeacherConflict = "Teacher is already assigned to another class at this time"
	MsgClassConflict   = "Class already has another teacher at this time"
	MsgRoomConflict    = "Room is already occupied at this time"
)

// DetectConflicts checks a candidate entry against the current entry set and
// returns every conflict found, not just the first. The three checks are
// evaluated independently:
//
//   - teacher: another entry on the same day and slot with the same teacher
//   - class:   another entry on the same day and slot with the same class,
//     skipped when the candidate has no class
//   - room:    another entry on the same day and slot with the same room,
//     skipped when the candidate has no room
//
// Free-period candidates are exempt from all checks. When editing, excludeID
// removes the entry being edited from consideration; pass 0 for a create.
func DetectConflicts(candidate models.TimetableEntry, existing []models.TimetableEntry, excludeID int) []Conflict {
	conflicts := []Conflict{}
	if candidate.IsFreePeriod {
		return conflicts
	}

	var teacherHit, classHit, roomHit bool
	for _, entry := range existing {
		if excludeID != 0 && entry.ID == excludeID {
			continue
		}
		if entry.DayOfWeek != candidate.DayOfWeek || entry.TimeSlotID != candidate.TimeSlotID {
			continue
		}
		if entry.TeacherID == candidate.TeacherID {
			teacherHit = true
		}
		if candidate.ClassID != nil && entry.ClassID != nil && *entry.ClassID == *candidate.ClassID {
			classHit = true
		}
		if candidate.RoomNumber != nil && *candidate.RoomNumber != "" &&
			entry.RoomNumber != nil && *entry.RoomNumber == *candidate.RoomNumber {
			roomHit = true
		}
	}

	if teacherHit {
		conflicts = append(conflicts, Conflict{Type: TeacherConflict, Message: MsgTeacherConflict})
	}
	if classHit {
		conflicts = append(conflicts, Conflict{Type: ClassConflict, Message: MsgClassConflict})
	}
	if roomHit {
		conflicts = append(conflicts, Conflict{Type: RoomConflict, Message: MsgRoomConflict})
	}
	return conflicts
}
