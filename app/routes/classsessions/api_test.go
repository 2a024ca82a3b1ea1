package classsessions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/routetest"
	"github.com/dclocky/SchoolPulse/app/storage/memory"
)

func seedEntry(t *testing.T, store *memory.Store) *models.TimetableEntry {
	t.Helper()
	entry := &models.TimetableEntry{TeacherID: 1, TimeSlotID: 1, DayOfWeek: 1}
	require.NoError(t, store.CreateTimetableEntry(entry))
	return entry
}

func TestGetOrCreateClassSession(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	entry := seedEntry(t, store)

	payload := map[string]interface{}{
		"timetableEntryId": entry.ID,
		"date":             "2026-03-02",
	}

	resp := routetest.Do(t, app, http.MethodPost, "/api/class-sessions", payload, token)
	require.Equal(t, 201, resp.StatusCode)
	var first models.ClassSession
	routetest.DecodeJSON(t, resp, &first)
	assert.NotZero(t, first.ID)

	// Asking again for the same entry and date returns the same session.
	resp = routetest.Do(t, app, http.MethodPost, "/api/class-sessions", payload, token)
	require.Equal(t, 200, resp.StatusCode)
	var second models.ClassSession
	routetest.DecodeJSON(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateClassSessionUnknownEntry(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/class-sessions", map[string]interface{}{
		"timetableEntryId": 42,
		"date":             "2026-03-02",
	}, token)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetOrCreateClassSessionBadDate(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	entry := seedEntry(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/class-sessions", map[string]interface{}{
		"timetableEntryId": entry.ID,
		"date":             "next tuesday",
	}, token)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateClassSessionNotesAndPlan(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	entry := seedEntry(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/class-sessions", map[string]interface{}{
		"timetableEntryId": entry.ID,
		"date":             "2026-03-02",
	}, token)
	require.Equal(t, 201, resp.StatusCode)
	var session models.ClassSession
	routetest.DecodeJSON(t, resp, &session)

	resp = routetest.Do(t, app, http.MethodPut, "/api/class-sessions/1", map[string]interface{}{
		"notes": "covered fractions",
	}, token)
	require.Equal(t, 200, resp.StatusCode)
	var updated models.ClassSession
	routetest.DecodeJSON(t, resp, &updated)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "covered fractions", *updated.Notes)

	// Setting the plan later keeps the notes.
	resp = routetest.Do(t, app, http.MethodPut, "/api/class-sessions/1", map[string]interface{}{
		"lessonPlan": "start decimals",
	}, token)
	require.Equal(t, 200, resp.StatusCode)
	routetest.DecodeJSON(t, resp, &updated)
	require.NotNil(t, updated.Notes)
	require.NotNil(t, updated.LessonPlan)
	assert.Equal(t, "covered fractions", *updated.Notes)
	assert.Equal(t, "start decimals", *updated.LessonPlan)
}

func TestUpdateClassSessionNotFound(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)

	resp := routetest.Do(t, app, http.MethodPut, "/api/class-sessions/77", map[string]interface{}{
		"notes": "x",
	}, token)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestBothPathSpellingsServed(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	entry := seedEntry(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/classsessions", map[string]interface{}{
		"timetableEntryId": entry.ID,
		"date":             "2026-03-02",
	}, token)
	require.Equal(t, 201, resp.StatusCode)

	// Every compact path resolves, and the kebab-case spelling reaches the
	// same handlers.
	for _, path := range []string{
		"/api/classsessions",
		"/api/classsessions/timetable/1",
		"/api/classsessions/1",
		"/api/class-sessions",
		"/api/class-sessions/entry/1",
		"/api/class-sessions/timetable/1",
	} {
		resp := routetest.Do(t, app, http.MethodGet, path, nil, token)
		assert.Equal(t, 200, resp.StatusCode, path)
	}

	resp = routetest.Do(t, app, http.MethodPut, "/api/classsessions/1", map[string]interface{}{
		"notes": "first lesson",
	}, token)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestListSessionsByEntry(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	entry := seedEntry(t, store)

	for _, date := range []string{"2026-03-02", "2026-03-09", "2026-03-16"} {
		resp := routetest.Do(t, app, http.MethodPost, "/api/class-sessions", map[string]interface{}{
			"timetableEntryId": entry.ID,
			"date":             date,
		}, token)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp := routetest.Do(t, app, http.MethodGet, "/api/class-sessions/entry/1", nil, token)
	require.Equal(t, 200, resp.StatusCode)
	var sessions []models.ClassSession
	routetest.DecodeJSON(t, resp, &sessions)
	require.Len(t, sessions, 3)
	// Newest first.
	assert.True(t, sessions[0].Date.After(sessions[2].Date))
}
