package postgres

import (
	"database/sql"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func (s *Store) Settings() (*models.Settings, error) {
	var v models.Settings
	err := s.db.QueryRow(
		`SELECT id, semester_start_date, semester_end_date, school_name FROM settings LIMIT 1`,
	).Scan(&v.ID, &v.SemesterStartDate, &v.SemesterEndDate, &v.SchoolName)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SaveSettings upserts the single settings row.
func (s *Store) SaveSettings(v *models.Settings) error {
	existing, err := s.Settings()
	if err == storage.ErrNotFound {
		return s.db.QueryRow(
			`INSERT INTO settings (semester_start_date, semester_end_date, school_name)
			 VALUES ($1, $2, $3) RETURNING id`,
			v.SemesterStartDate, v.SemesterEndDate, v.SchoolName,
		).Scan(&v.ID)
	}
	if err != nil {
		return err
	}

	v.ID = existing.ID
	_, err = s.db.Exec(
		`UPDATE settings SET semester_start_date = $1, semester_end_date = $2, school_name = $3 WHERE id = $4`,
		v.SemesterStartDate, v.SemesterEndDate, v.SchoolName, v.ID,
	)
	return err
}
