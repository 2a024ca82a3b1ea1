package postgres

import (
	"database/sql"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

// Subjects

func (s *Store) Subjects() ([]models.Subject, error) {
	rows, err := s.db.Query(`SELECT id, name, color FROM subjects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var v models.Subject
		if err := rows.Scan(&v.ID, &v.Name, &v.Color); err != nil {
			return nil, err
		}
		subjects = append(subjects, v)
	}
	return subjects, rows.Err()
}

func (s *Store) Subject(id int) (*models.Subject, error) {
	var v models.Subject
	err := s.db.QueryRow(`SELECT id, name, color FROM subjects WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Color)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) CreateSubject(v *models.Subject) error {
	return s.db.QueryRow(
		`INSERT INTO subjects (name, color) VALUES ($1, $2) RETURNING id`,
		v.Name, v.Color,
	).Scan(&v.ID)
}

// Classes

func (s *Store) Classes() ([]models.Class, error) {
	rows, err := s.db.Query(`SELECT id, name, grade, section, room_number FROM classes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var v models.Class
		if err := rows.Scan(&v.ID, &v.Name, &v.Grade, &v.Section, &v.RoomNumber); err != nil {
			return nil, err
		}
		classes = append(classes, v)
	}
	return classes, rows.Err()
}

func (s *Store) Class(id int) (*models.Class, error) {
	var v models.Class
	err := s.db.QueryRow(`SELECT id, name, grade, section, room_number FROM classes WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Grade, &v.Section, &v.RoomNumber)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) CreateClass(v *models.Class) error {
	return s.db.QueryRow(
		`INSERT INTO classes (name, grade, section, room_number) VALUES ($1, $2, $3, $4) RETURNING id`,
		v.Name, v.Grade, v.Section, v.RoomNumber,
	).Scan(&v.ID)
}

// Time slots

func (s *Store) TimeSlots() ([]models.TimeSlot, error) {
	rows, err := s.db.Query(`SELECT id, start_time, end_time, label FROM time_slots ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []models.TimeSlot{}
	for rows.Next() {
		var v models.TimeSlot
		if err := rows.Scan(&v.ID, &v.StartTime, &v.EndTime, &v.Label); err != nil {
			return nil, err
		}
		slots = append(slots, v)
	}
	return slots, rows.Err()
}

func (s *Store) TimeSlot(id int) (*models.TimeSlot, error) {
	var v models.TimeSlot
	err := s.db.QueryRow(`SELECT id, start_time, end_time, label FROM time_slots WHERE id = $1`, id).
		Scan(&v.ID, &v.StartTime, &v.EndTime, &v.Label)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) CreateTimeSlot(v *models.TimeSlot) error {
	return s.db.QueryRow(
		`INSERT INTO time_slots (start_time, end_time, label) VALUES ($1, $2, $3) RETURNING id`,
		v.StartTime, v.EndTime, v.Label,
	).Scan(&v.ID)
}
