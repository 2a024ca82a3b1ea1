package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/scheduling"
)

// ErrNotFound is returned when an id does not exist in the store.
var ErrNotFound = errors.New("not found")

// ConflictError rejects a timetable write that would double-book a teacher,
// class or room. It carries every conflict found, not just the first.
type ConflictError struct {
	Conflicts []scheduling.Conflict
}

func (e *ConflictError) Error() string {
	msgs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		msgs[i] = c.Message
	}
	return "scheduling conflict: " + strings.Join(msgs, "; ")
}

// Store is the persistence boundary for the whole application. Two
// implementations exist: postgres for production and memory for tests and
// local development.
//
// Create methods assign the generated id to the passed record in place.
// CreateTimetableEntry and UpdateTimetableEntry run the conflict check and the
// write atomically and return *ConflictError on a double-booking.
type Store interface {
	// Users
	User(id int) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	Users() ([]models.User, error)
	Teachers() ([]models.User, error)
	CreateUser(u *models.User) error

	// Subjects
	Subjects() ([]models.Subject, error)
	Subject(id int) (*models.Subject, error)
	CreateSubject(s *models.Subject) error

	// Classes
	Classes() ([]models.Class, error)
	Class(id int) (*models.Class, error)
	CreateClass(c *models.Class) error

	// Time slots
	TimeSlots() ([]models.TimeSlot, error)
	TimeSlot(id int) (*models.TimeSlot, error)
	CreateTimeSlot(t *models.TimeSlot) error

	// Timetable entries
	TimetableEntries() ([]models.TimetableEntry, error)
	TimetableEntriesByTeacher(teacherID int) ([]models.TimetableEntry, error)
	TimetableEntriesByDay(dayOfWeek int) ([]models.TimetableEntry, error)
	TimetableEntry(id int) (*models.TimetableEntry, error)
	CreateTimetableEntry(e *models.TimetableEntry) error
	UpdateTimetableEntry(e *models.TimetableEntry) error
	DeleteTimetableEntry(id int) error

	// Students
	Students() ([]models.Student, error)
	StudentsByClass(classID int) ([]models.Student, error)
	Student(id int) (*models.Student, error)
	CreateStudent(s *models.Student) error

	// Class sessions
	ClassSessions() ([]models.ClassSession, error)
	ClassSessionsByTimetableEntry(entryID int) ([]models.ClassSession, error)
	ClassSession(id int) (*models.ClassSession, error)
	// GetOrCreateClassSession returns the session for (entryID, date),
	// creating an empty one when absent. The boolean reports creation.
	GetOrCreateClassSession(entryID int, date time.Time) (*models.ClassSession, bool, error)
	UpdateClassSession(id int, notes, lessonPlan *string) (*models.ClassSession, error)

	// Attendance
	AttendanceByClassSession(sessionID int) ([]models.AttendanceRecord, error)
	// SaveAttendanceBatch upserts every record by (classSessionId, studentId)
	// in a single transaction; on any failure nothing is committed.
	SaveAttendanceBatch(records []models.AttendanceRecord) ([]models.AttendanceRecord, error)

	// Homework
	HomeworkByClassSession(sessionID int) ([]models.Homework, error)
	CreateHomework(h *models.Homework) error
	UpdateHomework(h *models.Homework) error

	// Substitutions
	Substitutions() ([]models.Substitution, error)
	SubstitutionsByTeacher(teacherID int) ([]models.Substitution, error)
	CreateSubstitution(s *models.Substitution) error

	// Settings
	Settings() (*models.Settings, error)
	SaveSettings(s *models.Settings) error
}
