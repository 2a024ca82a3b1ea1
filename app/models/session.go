package models

import "time"

// ClassSession is one concrete dated occurrence of a timetable entry. Sessions
// are keyed by (TimetableEntryID, Date); the date is stored truncated to
// midnight UTC.
type ClassSession struct {
	ID               int       `json:"id"`
	TimetableEntryID int       `json:"timetableEntryId"`
	Date             time.Time `json:"date"`
	Notes            *string   `json:"notes"`
	LessonPlan       *string   `json:"lessonPlan"`
}

// SessionDate normalizes a timestamp to the calendar date used as part of the
// class session key.
func SessionDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
