package models

import "time"

// AttendanceStatus is the per-student status recorded against a class session.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// Valid reports whether the status is one of the recognized values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late:
		return true
	}
	return false
}

// AttendanceRecord marks one student's status for one class session. At most
// one record exists per (ClassSessionID, StudentID); repeated submissions
// replace the stored status.
type AttendanceRecord struct {
	ID             int              `json:"id"`
	ClassSessionID int              `json:"classSessionId"`
	StudentID      int              `json:"studentId"`
	Status         AttendanceStatus `json:"status"`
	Timestamp      time.Time        `json:"timestamp"`
}
