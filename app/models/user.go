package models

// User roles
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// User represents an admin or teacher account. Subjects is a loose list of
// subject names, not foreign keys to the subjects table.
type User struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Password  string   `json:"-"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      string   `json:"role"`
	Subjects  []string `json:"subjects"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
