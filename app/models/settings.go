package models

import "time"

// Settings holds school-wide configuration. A single row exists.
type Settings struct {
	ID                int       `json:"id"`
	SemesterStartDate time.Time `json:"semesterStartDate"`
	SemesterEndDate   time.Time `json:"semesterEndDate"`
	SchoolName        string    `json:"schoolName"`
}
