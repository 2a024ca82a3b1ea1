package postgres

import (
	"github.com/dclocky/SchoolPulse/app/models"
)

func (s *Store) AttendanceByClassSession(sessionID int) ([]models.AttendanceRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, class_session_id, student_id, status, recorded_at
		 FROM attendance_records WHERE class_session_id = $1 ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.ID, &r.ClassSessionID, &r.StudentID, &r.Status, &r.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveAttendanceBatch upserts the whole submission in one transaction.
// Repeated saves for the same session replace statuses instead of stacking
// duplicate rows.
func (s *Store) SaveAttendanceBatch(records []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
	if len(records) == 0 {
		return []models.AttendanceRecord{}, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	saved := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		err := tx.QueryRow(
			`INSERT INTO attendance_records (class_session_id, student_id, status, recorded_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (class_session_id, student_id)
			 DO UPDATE SET status = EXCLUDED.status, recorded_at = EXCLUDED.recorded_at
			 RETURNING id`,
			r.ClassSessionID, r.StudentID, r.Status, r.Timestamp,
		).Scan(&r.ID)
		if err != nil {
			return nil, err
		}
		saved = append(saved, r)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}
