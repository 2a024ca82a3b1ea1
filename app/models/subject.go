package models

// Subject is a taught discipline with a display color for the timetable grid.
type Subject struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
