package models

// TimeSlot is a named recurring period of the school day.
// StartTime and EndTime are fixed-width 24h "HH:MM" strings, so lexicographic
// comparison orders them correctly.
type TimeSlot struct {
	ID        int    `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}
