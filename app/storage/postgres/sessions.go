package postgres

import (
	"database/sql"
	"time"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

const sessionColumns = `id, timetable_entry_id, date, notes, lesson_plan`

func scanSession(row interface{ Scan(...interface{}) error }) (*models.ClassSession, error) {
	var v models.ClassSession
	err := row.Scan(&v.ID, &v.TimetableEntryID, &v.Date, &v.Notes, &v.LessonPlan)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) ClassSessions() ([]models.ClassSession, error) {
	return s.querySessions(`SELECT ` + sessionColumns + ` FROM class_sessions ORDER BY id`)
}

func (s *Store) ClassSessionsByTimetableEntry(entryID int) ([]models.ClassSession, error) {
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM class_sessions WHERE timetable_entry_id = $1 ORDER BY date DESC`,
		entryID)
}

func (s *Store) querySessions(query string, args ...interface{}) ([]models.ClassSession, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.ClassSession{}
	for rows.Next() {
		v, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *v)
	}
	return sessions, rows.Err()
}

func (s *Store) ClassSession(id int) (*models.ClassSession, error) {
	return scanSession(s.db.QueryRow(`SELECT `+sessionColumns+` FROM class_sessions WHERE id = $1`, id))
}

// GetOrCreateClassSession resolves the session for one entry on one calendar
// date, creating an empty row when none exists. The unique index on
// (timetable_entry_id, date) makes concurrent first reads converge on a
// single row.
func (s *Store) GetOrCreateClassSession(entryID int, date time.Time) (*models.ClassSession, bool, error) {
	day := models.SessionDate(date)

	session, err := scanSession(s.db.QueryRow(
		`INSERT INTO class_sessions (timetable_entry_id, date)
		 VALUES ($1, $2)
		 ON CONFLICT (timetable_entry_id, date) DO NOTHING
		 RETURNING `+sessionColumns,
		entryID, day))
	if err == nil {
		return session, true, nil
	}
	if err != storage.ErrNotFound {
		return nil, false, err
	}

	// Row already existed; the insert returned nothing.
	session, err = scanSession(s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM class_sessions WHERE timetable_entry_id = $1 AND date = $2`,
		entryID, day))
	if err != nil {
		return nil, false, err
	}
	return session, false, nil
}

func (s *Store) UpdateClassSession(id int, notes, lessonPlan *string) (*models.ClassSession, error) {
	return scanSession(s.db.QueryRow(
		`UPDATE class_sessions
		 SET notes = COALESCE($1, notes), lesson_plan = COALESCE($2, lesson_plan)
		 WHERE id = $3
		 RETURNING `+sessionColumns,
		notes, lessonPlan, id))
}
