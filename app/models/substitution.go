package models

import "time"

// Substitution is a temporary teacher swap over an inclusive date range. It
// overlays the timetable; it never rewrites TimetableEntry.TeacherID.
// Invariant: EndDate >= StartDate.
type Substitution struct {
	ID                  int       `json:"id"`
	OriginalTeacherID   int       `json:"originalTeacherId"`
	SubstituteTeacherID int       `json:"substituteTeacherId"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	Reason              *string   `json:"reason"`
}
