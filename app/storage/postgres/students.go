package postgres

import (
	"database/sql"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func (s *Store) Students() ([]models.Student, error) {
	return s.queryStudents(`SELECT id, first_name, last_name, class_id, email FROM students ORDER BY id`)
}

func (s *Store) StudentsByClass(classID int) ([]models.Student, error) {
	return s.queryStudents(
		`SELECT id, first_name, last_name, class_id, email FROM students WHERE class_id = $1 ORDER BY id`,
		classID)
}

func (s *Store) queryStudents(query string, args ...interface{}) ([]models.Student, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var v models.Student
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.ClassID, &v.Email); err != nil {
			return nil, err
		}
		students = append(students, v)
	}
	return students, rows.Err()
}

func (s *Store) Student(id int) (*models.Student, error) {
	var v models.Student
	err := s.db.QueryRow(`SELECT id, first_name, last_name, class_id, email FROM students WHERE id = $1`, id).
		Scan(&v.ID, &v.FirstName, &v.LastName, &v.ClassID, &v.Email)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) CreateStudent(v *models.Student) error {
	return s.db.QueryRow(
		`INSERT INTO students (first_name, last_name, class_id, email)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		v.FirstName, v.LastName, v.ClassID, v.Email,
	).Scan(&v.ID)
}
