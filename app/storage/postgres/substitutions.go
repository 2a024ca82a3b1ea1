package postgres

import (
	"github.com/dclocky/SchoolPulse/app/models"
)

const substitutionColumns = `id, original_teacher_id, substitute_teacher_id, start_date, end_date, reason`

func (s *Store) Substitutions() ([]models.Substitution, error) {
	return s.querySubstitutions(`SELECT ` + substitutionColumns + ` FROM substitutions ORDER BY id`)
}

// SubstitutionsByTeacher returns substitutions where the teacher appears on
// either side of the swap; callers tell the roles apart by comparing
// originalTeacherId.
func (s *Store) SubstitutionsByTeacher(teacherID int) ([]models.Substitution, error) {
	return s.querySubstitutions(
		`SELECT `+substitutionColumns+` FROM substitutions
		 WHERE original_teacher_id = $1 OR substitute_teacher_id = $1 ORDER BY id`,
		teacherID)
}

func (s *Store) querySubstitutions(query string, args ...interface{}) ([]models.Substitution, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Substitution{}
	for rows.Next() {
		var v models.Substitution
		if err := rows.Scan(&v.ID, &v.OriginalTeacherID, &v.SubstituteTeacherID,
			&v.StartDate, &v.EndDate, &v.Reason); err != nil {
			return nil, err
		}
		subs = append(subs, v)
	}
	return subs, rows.Err()
}

func (s *Store) CreateSubstitution(v *models.Substitution) error {
	return s.db.QueryRow(
		`INSERT INTO substitutions (original_teacher_id, substitute_teacher_id, start_date, end_date, reason)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		v.OriginalTeacherID, v.SubstituteTeacherID, v.StartDate, v.EndDate, v.Reason,
	).Scan(&v.ID)
}
