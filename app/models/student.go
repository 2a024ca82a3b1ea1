package models

// Student belongs to exactly one class.
type Student struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	ClassID   int     `json:"classId"`
	Email     *string `json:"email"`
}
