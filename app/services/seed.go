package services

import (
	"log"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

// SeedDefaults populates an empty store with a usable school: an admin
// account, the standard subjects, four classes and the seven-period day.
// It is idempotent; a store with any users is left untouched.
func SeedDefaults(store storage.Store) error {
	users, err := store.Users()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	log.Println("Seeding default data...")

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := models.User{
		Username:  "admin",
		Password:  hash,
		Email:     "admin@school.edu",
		FirstName: "School",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}
	if err := store.CreateUser(&admin); err != nil {
		return err
	}

	subjects := []models.Subject{
		{Name: "Mathematics", Color: "#3b82f6"},
		{Name: "English", Color: "#10b981"},
		{Name: "Science", Color: "#8b5cf6"},
		{Name: "History", Color: "#f59e0b"},
		{Name: "Geography", Color: "#06b6d4"},
		{Name: "Physical Education", Color: "#ef4444"},
		{Name: "Art", Color: "#ec4899"},
		{Name: "Music", Color: "#6366f1"},
	}
	for i := range subjects {
		if err := store.CreateSubject(&subjects[i]); err != nil {
			return err
		}
	}

	classes := []models.Class{
		{Name: "10A", Grade: "10", Section: "A", RoomNumber: ptr("101")},
		{Name: "11B", Grade: "11", Section: "B", RoomNumber: ptr("102")},
		{Name: "9C", Grade: "9", Section: "C", RoomNumber: ptr("103")},
		{Name: "12A", Grade: "12", Section: "A", RoomNumber: ptr("104")},
	}
	for i := range classes {
		if err := store.CreateClass(&classes[i]); err != nil {
			return err
		}
	}

	slots := []models.TimeSlot{
		{StartTime: "08:00", EndTime: "08:45", Label: "Period 1"},
		{StartTime: "08:50", EndTime: "09:35", Label: "Period 2"},
		{StartTime: "09:40", EndTime: "10:25", Label: "Period 3"},
		{StartTime: "10:45", EndTime: "11:30", Label: "Period 4"},
		{StartTime: "11:35", EndTime: "12:20", Label: "Period 5"},
		{StartTime: "13:00", EndTime: "13:45", Label: "Period 6"},
		{StartTime: "13:50", EndTime: "14:35", Label: "Period 7"},
	}
	for i := range slots {
		if err := store.CreateTimeSlot(&slots[i]); err != nil {
			return err
		}
	}

	log.Println("Default data seeded")
	return nil
}

func ptr(s string) *string { return &s }
