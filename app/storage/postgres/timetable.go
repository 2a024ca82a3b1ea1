package postgres

import (
	"database/sql"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/scheduling"
	"github.com/dclocky/SchoolPulse/app/storage"

	"github.com/lib/pq"
)

const entryColumns = `id, teacher_id, class_id, subject_id, time_slot_id, day_of_week, room_number, is_free_period`

func scanEntry(row interface{ Scan(...interface{}) error }) (*models.TimetableEntry, error) {
	var e models.TimetableEntry
	err := row.Scan(&e.ID, &e.TeacherID, &e.ClassID, &e.SubjectID, &e.TimeSlotID,
		&e.DayOfWeek, &e.RoomNumber, &e.IsFreePeriod)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) TimetableEntries() ([]models.TimetableEntry, error) {
	return s.queryEntries(s.db, `SELECT `+entryColumns+` FROM timetable_entries ORDER BY id`)
}

func (s *Store) TimetableEntriesByTeacher(teacherID int) ([]models.TimetableEntry, error) {
	return s.queryEntries(s.db,
		`SELECT `+entryColumns+` FROM timetable_entries WHERE teacher_id = $1 ORDER BY id`, teacherID)
}

func (s *Store) TimetableEntriesByDay(dayOfWeek int) ([]models.TimetableEntry, error) {
	return s.queryEntries(s.db,
		`SELECT `+entryColumns+` FROM timetable_entries WHERE day_of_week = $1 ORDER BY id`, dayOfWeek)
}

func (s *Store) TimetableEntry(id int) (*models.TimetableEntry, error) {
	return scanEntry(s.db.QueryRow(`SELECT `+entryColumns+` FROM timetable_entries WHERE id = $1`, id))
}

type querier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

func (s *Store) queryEntries(q querier, query string, args ...interface{}) ([]models.TimetableEntry, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.TimetableEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// CreateTimetableEntry checks for teacher/class/room collisions and inserts in
// one transaction. The day+slot rows are locked so two concurrent creates for
// the same slot serialize; the partial unique index catches anything that
// still slips through.
func (s *Store) CreateTimetableEntry(e *models.TimetableEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.checkConflicts(tx, e, 0); err != nil {
		return err
	}

	err = tx.QueryRow(
		`INSERT INTO timetable_entries (teacher_id, class_id, subject_id, time_slot_id, day_of_week, room_number, is_free_period)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		e.TeacherID, e.ClassID, e.SubjectID, e.TimeSlotID, e.DayOfWeek, e.RoomNumber, e.IsFreePeriod,
	).Scan(&e.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return tx.Commit()
}

// UpdateTimetableEntry rewrites the mutable fields of an existing entry under
// the same conflict check as create. Teacher and time slot are immutable after
// creation; callers carry them over from the stored row.
func (s *Store) UpdateTimetableEntry(e *models.TimetableEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.checkConflicts(tx, e, e.ID); err != nil {
		return err
	}

	res, err := tx.Exec(
		`UPDATE timetable_entries
		 SET class_id = $1, subject_id = $2, day_of_week = $3, room_number = $4, is_free_period = $5
		 WHERE id = $6`,
		e.ClassID, e.SubjectID, e.DayOfWeek, e.RoomNumber, e.IsFreePeriod, e.ID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return tx.Commit()
}

func (s *Store) checkConflicts(tx *sql.Tx, e *models.TimetableEntry, excludeID int) error {
	if e.IsFreePeriod {
		return nil
	}
	existing, err := s.queryEntries(tx,
		`SELECT `+entryColumns+` FROM timetable_entries
		 WHERE day_of_week = $1 AND time_slot_id = $2 FOR UPDATE`,
		e.DayOfWeek, e.TimeSlotID)
	if err != nil {
		return err
	}
	if conflicts := scheduling.DetectConflicts(*e, existing, excludeID); len(conflicts) > 0 {
		return &storage.ConflictError{Conflicts: conflicts}
	}
	return nil
}

func mapUniqueViolation(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return &storage.ConflictError{Conflicts: []scheduling.Conflict{{
			Type:    scheduling.TeacherConflict,
			Message: scheduling.MsgTeacherConflict,
		}}}
	}
	return err
}

// DeleteTimetableEntry removes the entry row only. Class sessions referencing
// it stay behind (no cascade).
func (s *Store) DeleteTimetableEntry(id int) error {
	res, err := s.db.Exec(`DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
