package models

// TimetableEntry is a recurring weekly assignment of a teacher to a day and
// time slot, either teaching a class in a room or marked as a free period.
// DayOfWeek runs 0-6 with Sunday = 0.
//
// Invariant: when IsFreePeriod is true, ClassID, SubjectID and RoomNumber are
// nil. Entries are built through scheduling.Lesson / scheduling.FreePeriod so
// the invariant holds at the type level rather than by convention.
type TimetableEntry struct {
	ID           int     `json:"id"`
	TeacherID    int     `json:"teacherId"`
	ClassID      *int    `json:"classId"`
	SubjectID    *int    `json:"subjectId"`
	TimeSlotID   int     `json:"timeSlotId"`
	DayOfWeek    int     `json:"dayOfWeek"`
	RoomNumber   *string `json:"roomNumber"`
	IsFreePeriod bool    `json:"isFreePeriod"`
}
