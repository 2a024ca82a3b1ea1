package models

// Class is a student group, e.g. grade 10 section A.
type Class struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Grade      string  `json:"grade"`
	Section    string  `json:"section"`
	RoomNumber *string `json:"roomNumber"`
}
