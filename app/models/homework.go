package models

import "time"

// Homework is an assignment attached to a class session.
type Homework struct {
	ID             int       `json:"id"`
	ClassSessionID int       `json:"classSessionId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"dueDate"`
}
