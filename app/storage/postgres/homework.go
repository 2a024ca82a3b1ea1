package postgres

import (
	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func (s *Store) HomeworkByClassSession(sessionID int) ([]models.Homework, error) {
	rows, err := s.db.Query(
		`SELECT id, class_session_id, title, description, due_date
		 FROM homework WHERE class_session_id = $1 ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Homework{}
	for rows.Next() {
		var h models.Homework
		if err := rows.Scan(&h.ID, &h.ClassSessionID, &h.Title, &h.Description, &h.DueDate); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (s *Store) CreateHomework(h *models.Homework) error {
	return s.db.QueryRow(
		`INSERT INTO homework (class_session_id, title, description, due_date)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		h.ClassSessionID, h.Title, h.Description, h.DueDate,
	).Scan(&h.ID)
}

func (s *Store) UpdateHomework(h *models.Homework) error {
	res, err := s.db.Exec(
		`UPDATE homework SET title = $1, description = $2, due_date = $3 WHERE id = $4`,
		h.Title, h.Description, h.DueDate, h.ID,
	)
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
