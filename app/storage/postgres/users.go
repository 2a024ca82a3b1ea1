package postgres

import (
	"database/sql"
	"encoding/json"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

const userColumns = `id, username, password, email, first_name, last_name, role, subjects`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var subjects []byte
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName, &u.Role, &subjects)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(subjects, &u.Subjects); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) User(id int) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *Store) Users() ([]models.User, error) {
	return s.queryUsers(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
}

func (s *Store) Teachers() ([]models.User, error) {
	return s.queryUsers(`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, models.RoleTeacher)
}

func (s *Store) queryUsers(query string, args ...interface{}) ([]models.User, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(u *models.User) error {
	if u.Subjects == nil {
		u.Subjects = []string{}
	}
	subjects, err := json.Marshal(u.Subjects)
	if err != nil {
		return err
	}
	return s.db.QueryRow(
		`INSERT INTO users (username, password, email, first_name, last_name, role, subjects)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		u.Username, u.Password, u.Email, u.FirstName, u.LastName, u.Role, subjects,
	).Scan(&u.ID)
}
