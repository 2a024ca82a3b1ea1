// Package memory is an in-memory Store used by the test suite and by
// STORAGE=memory development mode. All maps are guarded by one RWMutex;
// the conflict check and the write happen under the same lock, matching the
// transactional guarantee of the postgres implementation.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/scheduling"
	"github.com/dclocky/SchoolPulse/app/storage"
)

type Store struct {
	mu sync.RWMutex

	users         map[int]models.User
	subjects      map[int]models.Subject
	classes       map[int]models.Class
	timeSlots     map[int]models.TimeSlot
	entries       map[int]models.TimetableEntry
	students      map[int]models.Student
	sessions      map[int]models.ClassSession
	attendance    map[int]models.AttendanceRecord
	homework      map[int]models.Homework
	substitutions map[int]models.Substitution
	settings      *models.Settings

	nextID map[string]int
}

func New() *Store {
	return &Store{
		users:         make(map[int]models.User),
		subjects:      make(map[int]models.Subject),
		classes:       make(map[int]models.Class),
		timeSlots:     make(map[int]models.TimeSlot),
		entries:       make(map[int]models.TimetableEntry),
		students:      make(map[int]models.Student),
		sessions:      make(map[int]models.ClassSession),
		attendance:    make(map[int]models.AttendanceRecord),
		homework:      make(map[int]models.Homework),
		substitutions: make(map[int]models.Substitution),
		nextID:        make(map[string]int),
	}
}

func (s *Store) nextFor(table string) int {
	s.nextID[table]++
	return s.nextID[table]
}

// Users

func (s *Store) User(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sortByID(out, func(u models.User) int { return u.ID })
	return out, nil
}

func (s *Store) Teachers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == models.RoleTeacher {
			out = append(out, u)
		}
	}
	sortByID(out, func(u models.User) int { return u.ID })
	return out, nil
}

func (s *Store) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextFor("users")
	s.users[u.ID] = *u
	return nil
}

// Subjects

func (s *Store) Subjects() ([]models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subject, 0, len(s.subjects))
	for _, v := range s.subjects {
		out = append(out, v)
	}
	sortByID(out, func(v models.Subject) int { return v.ID })
	return out, nil
}

func (s *Store) Subject(id int) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.subjects[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Store) CreateSubject(v *models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("subjects")
	s.subjects[v.ID] = *v
	return nil
}

// Classes

func (s *Store) Classes() ([]models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Class, 0, len(s.classes))
	for _, v := range s.classes {
		out = append(out, v)
	}
	sortByID(out, func(v models.Class) int { return v.ID })
	return out, nil
}

func (s *Store) Class(id int) (*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.classes[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Store) CreateClass(v *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("classes")
	s.classes[v.ID] = *v
	return nil
}

// Time slots

func (s *Store) TimeSlots() ([]models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimeSlot, 0, len(s.timeSlots))
	for _, v := range s.timeSlots {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (s *Store) TimeSlot(id int) (*models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.timeSlots[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Store) CreateTimeSlot(v *models.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("time_slots")
	s.timeSlots[v.ID] = *v
	return nil
}

// Timetable entries

func (s *Store) TimetableEntries() ([]models.TimetableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entriesLocked(), nil
}

func (s *Store) entriesLocked() []models.TimetableEntry {
	out := make([]models.TimetableEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sortByID(out, func(e models.TimetableEntry) int { return e.ID })
	return out
}

func (s *Store) TimetableEntriesByTeacher(teacherID int) ([]models.TimetableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.TimetableEntry{}
	for _, e := range s.entries {
		if e.TeacherID == teacherID {
			out = append(out, e)
		}
	}
	sortByID(out, func(e models.TimetableEntry) int { return e.ID })
	return out, nil
}

func (s *Store) TimetableEntriesByDay(dayOfWeek int) ([]models.TimetableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.TimetableEntry{}
	for _, e := range s.entries {
		if e.DayOfWeek == dayOfWeek {
			out = append(out, e)
		}
	}
	sortByID(out, func(e models.TimetableEntry) int { return e.ID })
	return out, nil
}

func (s *Store) TimetableEntry(id int) (*models.TimetableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (s *Store) CreateTimetableEntry(e *models.TimetableEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conflicts := scheduling.DetectConflicts(*e, s.entriesLocked(), 0); len(conflicts) > 0 {
		return &storage.ConflictError{Conflicts: conflicts}
	}
	e.ID = s.nextFor("timetable_entries")
	s.entries[e.ID] = *e
	return nil
}

func (s *Store) UpdateTimetableEntry(e *models.TimetableEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[e.ID]; !ok {
		return storage.ErrNotFound
	}
	if conflicts := scheduling.DetectConflicts(*e, s.entriesLocked(), e.ID); len(conflicts) > 0 {
		return &storage.ConflictError{Conflicts: conflicts}
	}
	s.entries[e.ID] = *e
	return nil
}

// DeleteTimetableEntry removes the entry only; class sessions that reference
// it are left in place.
func (s *Store) DeleteTimetableEntry(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// Students

func (s *Store) Students() ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.students))
	for _, v := range s.students {
		out = append(out, v)
	}
	sortByID(out, func(v models.Student) int { return v.ID })
	return out, nil
}

func (s *Store) StudentsByClass(classID int) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Student{}
	for _, v := range s.students {
		if v.ClassID == classID {
			out = append(out, v)
		}
	}
	sortByID(out, func(v models.Student) int { return v.ID })
	return out, nil
}

func (s *Store) Student(id int) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.students[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Store) CreateStudent(v *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("students")
	s.students[v.ID] = *v
	return nil
}

// Class sessions

func (s *Store) ClassSessions() ([]models.ClassSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ClassSession, 0, len(s.sessions))
	for _, v := range s.sessions {
		out = append(out, v)
	}
	sortByID(out, func(v models.ClassSession) int { return v.ID })
	return out, nil
}

func (s *Store) ClassSessionsByTimetableEntry(entryID int) ([]models.ClassSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.ClassSession{}
	for _, v := range s.sessions {
		if v.TimetableEntryID == entryID {
			out = append(out, v)
		}
	}
	// Newest first, so callers reading "today's" session get the latest date.
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) ClassSession(id int) (*models.ClassSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sessions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Store) GetOrCreateClassSession(entryID int, date time.Time) (*models.ClassSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := models.SessionDate(date)
	for _, v := range s.sessions {
		if v.TimetableEntryID == entryID && v.Date.Equal(day) {
			v := v
			return &v, false, nil
		}
	}
	session := models.ClassSession{
		ID:               s.nextFor("class_sessions"),
		TimetableEntryID: entryID,
		Date:             day,
	}
	s.sessions[session.ID] = session
	return &session, true, nil
}

func (s *Store) UpdateClassSession(id int, notes, lessonPlan *string) (*models.ClassSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sessions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if notes != nil {
		v.Notes = notes
	}
	if lessonPlan != nil {
		v.LessonPlan = lessonPlan
	}
	s.sessions[id] = v
	return &v, nil
}

// Attendance

func (s *Store) AttendanceByClassSession(sessionID int) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.AttendanceRecord{}
	for _, v := range s.attendance {
		if v.ClassSessionID == sessionID {
			out = append(out, v)
		}
	}
	sortByID(out, func(v models.AttendanceRecord) int { return v.ID })
	return out, nil
}

func (s *Store) SaveAttendanceBatch(records []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if existing := s.findAttendanceLocked(r.ClassSessionID, r.StudentID); existing != nil {
			existing.Status = r.Status
			existing.Timestamp = r.Timestamp
			s.attendance[existing.ID] = *existing
			saved = append(saved, *existing)
			continue
		}
		r.ID = s.nextFor("attendance_records")
		s.attendance[r.ID] = r
		saved = append(saved, r)
	}
	return saved, nil
}

func (s *Store) findAttendanceLocked(sessionID, studentID int) *models.AttendanceRecord {
	for _, v := range s.attendance {
		if v.ClassSessionID == sessionID && v.StudentID == studentID {
			v := v
			return &v
		}
	}
	return nil
}

// Homework

func (s *Store) HomeworkByClassSession(sessionID int) ([]models.Homework, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Homework{}
	for _, v := range s.homework {
		if v.ClassSessionID == sessionID {
			out = append(out, v)
		}
	}
	sortByID(out, func(v models.Homework) int { return v.ID })
	return out, nil
}

func (s *Store) CreateHomework(v *models.Homework) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("homework")
	s.homework[v.ID] = *v
	return nil
}

func (s *Store) UpdateHomework(v *models.Homework) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.homework[v.ID]; !ok {
		return storage.ErrNotFound
	}
	s.homework[v.ID] = *v
	return nil
}

// Substitutions

func (s *Store) Substitutions() ([]models.Substitution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Substitution, 0, len(s.substitutions))
	for _, v := range s.substitutions {
		out = append(out, v)
	}
	sortByID(out, func(v models.Substitution) int { return v.ID })
	return out, nil
}

func (s *Store) SubstitutionsByTeacher(teacherID int) ([]models.Substitution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Substitution{}
	for _, v := range s.substitutions {
		if v.OriginalTeacherID == teacherID || v.SubstituteTeacherID == teacherID {
			out = append(out, v)
		}
	}
	sortByID(out, func(v models.Substitution) int { return v.ID })
	return out, nil
}

func (s *Store) CreateSubstitution(v *models.Substitution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextFor("substitutions")
	s.substitutions[v.ID] = *v
	return nil
}

// Settings

func (s *Store) Settings() (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, storage.ErrNotFound
	}
	v := *s.settings
	return &v, nil
}

func (s *Store) SaveSettings(v *models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		v.ID = s.nextFor("settings")
	} else {
		v.ID = s.settings.ID
	}
	copied := *v
	s.settings = &copied
	return nil
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

var _ storage.Store = (*Store)(nil)
