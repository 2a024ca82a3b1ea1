package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func newEntry(teacherID, slotID, day int) *models.TimetableEntry {
	return &models.TimetableEntry{
		TeacherID:  teacherID,
		ClassID:    intp(1),
		TimeSlotID: slotID,
		DayOfWeek:  day,
	}
}

func TestCreateTimetableEntryAssignsID(t *testing.T) {
	store := New()

	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))
	assert.NotZero(t, entry.ID)

	got, err := store.TimetableEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, *entry, *got)
}

func TestCreateTimetableEntryRejectsConflicts(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTimetableEntry(newEntry(1, 1, 1)))

	err := store.CreateTimetableEntry(newEntry(1, 1, 1))
	var conflictErr *storage.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.NotEmpty(t, conflictErr.Conflicts)

	// The rejected entry was not stored.
	entries, err := store.TimetableEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateTimetableEntryExcludesItself(t *testing.T) {
	store := New()
	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))

	// Re-saving the same schedule must not conflict with itself.
	entry.RoomNumber = strp("204")
	require.NoError(t, store.UpdateTimetableEntry(entry))

	got, err := store.TimetableEntry(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RoomNumber)
	assert.Equal(t, "204", *got.RoomNumber)
}

func TestUpdateTimetableEntryRejectsMoveOntoOccupiedSlot(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTimetableEntry(newEntry(1, 1, 1)))
	second := newEntry(1, 2, 1)
	require.NoError(t, store.CreateTimetableEntry(second))

	second.TimeSlotID = 1
	err := store.UpdateTimetableEntry(second)
	var conflictErr *storage.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// The stored entry is unchanged.
	got, err := store.TimetableEntry(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimeSlotID)
}

func TestFreePeriodsCoexistOnSameSlot(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTimetableEntry(newEntry(1, 1, 1)))

	fp := &models.TimetableEntry{TeacherID: 2, TimeSlotID: 1, DayOfWeek: 1, IsFreePeriod: true}
	require.NoError(t, store.CreateTimetableEntry(fp))
}

func TestTimetableEntryFilters(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTimetableEntry(newEntry(1, 1, 1)))
	require.NoError(t, store.CreateTimetableEntry(newEntry(1, 2, 2)))
	require.NoError(t, store.CreateTimetableEntry(newEntry(2, 1, 2)))

	byTeacher, err := store.TimetableEntriesByTeacher(1)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 2)
	for _, e := range byTeacher {
		assert.Equal(t, 1, e.TeacherID)
	}

	byDay, err := store.TimetableEntriesByDay(2)
	require.NoError(t, err)
	assert.Len(t, byDay, 2)
	for _, e := range byDay {
		assert.Equal(t, 2, e.DayOfWeek)
	}
}

func TestDeleteTimetableEntryLeavesSessionsInPlace(t *testing.T) {
	store := New()
	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	session, created, err := store.GetOrCreateClassSession(entry.ID, date)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, store.DeleteTimetableEntry(entry.ID))
	_, err = store.TimetableEntry(entry.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Historical session data survives the entry.
	got, err := store.ClassSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.TimetableEntryID)
}

func TestGetOrCreateClassSessionIsKeyedByEntryAndDate(t *testing.T) {
	store := New()
	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))

	morning := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	first, created, err := store.GetOrCreateClassSession(entry.ID, morning)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.SessionDate(morning), first.Date)

	// Same calendar day resolves to the same session regardless of time.
	second, created, err := store.GetOrCreateClassSession(entry.ID, afternoon)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// The next day gets a new session.
	nextDay, created, err := store.GetOrCreateClassSession(entry.ID, morning.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, nextDay.ID)
}

func TestUpdateClassSessionMergesFields(t *testing.T) {
	store := New()
	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))

	session, _, err := store.GetOrCreateClassSession(entry.ID, time.Now())
	require.NoError(t, err)

	updated, err := store.UpdateClassSession(session.ID, strp("covered chapter 4"), nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "covered chapter 4", *updated.Notes)
	assert.Nil(t, updated.LessonPlan)

	// A later update of the lesson plan keeps the notes.
	updated, err = store.UpdateClassSession(session.ID, nil, strp("review quiz"))
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "covered chapter 4", *updated.Notes)
	require.NotNil(t, updated.LessonPlan)
	assert.Equal(t, "review quiz", *updated.LessonPlan)

	_, err = store.UpdateClassSession(9999, strp("x"), nil)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClassSessionsByTimetableEntryNewestFirst(t *testing.T) {
	store := New()
	entry := newEntry(1, 1, 1)
	require.NoError(t, store.CreateTimetableEntry(entry))

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _, err := store.GetOrCreateClassSession(entry.ID, base.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	sessions, err := store.ClassSessionsByTimetableEntry(entry.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.True(t, sessions[0].Date.After(sessions[1].Date))
	assert.True(t, sessions[1].Date.After(sessions[2].Date))
}

func TestSaveAttendanceBatchUpsertsByStudentAndSession(t *testing.T) {
	store := New()

	now := time.Now().UTC()
	records := []models.AttendanceRecord{
		{ClassSessionID: 1, StudentID: 1, Status: models.Present, Timestamp: now},
		{ClassSessionID: 1, StudentID: 2, Status: models.Absent, Timestamp: now},
	}
	saved, err := store.SaveAttendanceBatch(records)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Marking student 2 late replaces the earlier record instead of adding one.
	later := now.Add(time.Minute)
	_, err = store.SaveAttendanceBatch([]models.AttendanceRecord{
		{ClassSessionID: 1, StudentID: 2, Status: models.Late, Timestamp: later},
	})
	require.NoError(t, err)

	all, err := store.AttendanceByClassSession(1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, r := range all {
		if r.StudentID == 2 {
			assert.Equal(t, models.Late, r.Status)
		}
	}

	// A different session tracks its own records.
	other, err := store.AttendanceByClassSession(2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSubstitutionsByTeacherMatchesEitherSide(t *testing.T) {
	store := New()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateSubstitution(&models.Substitution{
		OriginalTeacherID: 1, SubstituteTeacherID: 2, StartDate: start, EndDate: start.AddDate(0, 0, 4),
	}))
	require.NoError(t, store.CreateSubstitution(&models.Substitution{
		OriginalTeacherID: 3, SubstituteTeacherID: 1, StartDate: start, EndDate: start,
	}))

	subs, err := store.SubstitutionsByTeacher(1)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	subs, err = store.SubstitutionsByTeacher(2)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	subs, err = store.SubstitutionsByTeacher(9)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSettingsSingleRowUpsert(t *testing.T) {
	store := New()

	_, err := store.Settings()
	assert.ErrorIs(t, err, storage.ErrNotFound)

	first := &models.Settings{SchoolName: "Northside High"}
	require.NoError(t, store.SaveSettings(first))

	second := &models.Settings{SchoolName: "Northside Secondary"}
	require.NoError(t, store.SaveSettings(second))
	assert.Equal(t, first.ID, second.ID)

	got, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, "Northside Secondary", got.SchoolName)
}

func TestTeachersExcludesAdmins(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateUser(&models.User{Username: "admin", Role: models.RoleAdmin}))
	require.NoError(t, store.CreateUser(&models.User{Username: "t1", Role: models.RoleTeacher}))

	teachers, err := store.Teachers()
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "t1", teachers[0].Username)
}
