package timetable_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/routetest"
	"github.com/dclocky/SchoolPulse/app/scheduling"
)

func entryPayload(teacherID, slotID, day int) map[string]interface{} {
	return map[string]interface{}{
		"teacherId":  teacherID,
		"classId":    1,
		"timeSlotId": slotID,
		"dayOfWeek":  day,
		"roomNumber": "101",
	}
}

func TestCreateTimetableEntry(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token)
	require.Equal(t, 201, resp.StatusCode)

	var entry models.TimetableEntry
	routetest.DecodeJSON(t, resp, &entry)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, 1, entry.TeacherID)
	require.NotNil(t, entry.RoomNumber)
	assert.Equal(t, "101", *entry.RoomNumber)
}

func TestCreateTimetableEntryConflictReturns409(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token)
	require.Equal(t, 201, resp.StatusCode)

	// Same teacher, same day, same slot.
	payload := entryPayload(1, 1, 1)
	payload["classId"] = 2
	payload["roomNumber"] = "202"
	resp = routetest.Do(t, app, http.MethodPost, "/api/timetable", payload, token)
	require.Equal(t, 409, resp.StatusCode)

	var body struct {
		Error     string                `json:"error"`
		Conflicts []scheduling.Conflict `json:"conflicts"`
	}
	routetest.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Scheduling conflict", body.Error)
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, scheduling.MsgTeacherConflict, body.Conflicts[0].Message)
}

func TestCreateTimetableEntryValidation(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	// dayOfWeek missing entirely.
	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", map[string]interface{}{
		"teacherId":  1,
		"timeSlotId": 1,
	}, token)
	assert.Equal(t, 400, resp.StatusCode)

	// dayOfWeek out of range.
	resp = routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 7), token)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateTimetableEntryDayZeroIsSunday(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 0), token)
	require.Equal(t, 201, resp.StatusCode)

	var entry models.TimetableEntry
	routetest.DecodeJSON(t, resp, &entry)
	assert.Equal(t, 0, entry.DayOfWeek)
}

func TestFreePeriodDropsClassAndRoom(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	payload := entryPayload(1, 1, 1)
	payload["isFreePeriod"] = true
	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", payload, token)
	require.Equal(t, 201, resp.StatusCode)

	var entry models.TimetableEntry
	routetest.DecodeJSON(t, resp, &entry)
	assert.True(t, entry.IsFreePeriod)
	assert.Nil(t, entry.ClassID)
	assert.Nil(t, entry.RoomNumber)
}

func TestTimetableAuth(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, teacherToken := routetest.SeedTeacher(t, store)

	// No token at all.
	resp := routetest.Do(t, app, http.MethodGet, "/api/timetable", nil, "")
	assert.Equal(t, 401, resp.StatusCode)

	// Teachers can read.
	resp = routetest.Do(t, app, http.MethodGet, "/api/timetable", nil, teacherToken)
	assert.Equal(t, 200, resp.StatusCode)

	// But not write.
	resp = routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), teacherToken)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestUpdateTimetableEntry(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token)
	require.Equal(t, 201, resp.StatusCode)
	var entry models.TimetableEntry
	routetest.DecodeJSON(t, resp, &entry)

	// Room change is fine.
	resp = routetest.Do(t, app, http.MethodPut, "/api/timetable/1", map[string]interface{}{
		"roomNumber": "305",
	}, token)
	require.Equal(t, 200, resp.StatusCode)
	var updated models.TimetableEntry
	routetest.DecodeJSON(t, resp, &updated)
	require.NotNil(t, updated.RoomNumber)
	assert.Equal(t, "305", *updated.RoomNumber)

	// Reassigning the teacher is not.
	resp = routetest.Do(t, app, http.MethodPut, "/api/timetable/1", map[string]interface{}{
		"teacherId": 2,
	}, token)
	assert.Equal(t, 400, resp.StatusCode)

	// Unknown entry.
	resp = routetest.Do(t, app, http.MethodPut, "/api/timetable/999", map[string]interface{}{
		"roomNumber": "305",
	}, token)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUpdateTimetableEntryConflictReturns409(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token)
	require.Equal(t, 201, resp.StatusCode)

	payload := entryPayload(1, 1, 2)
	resp = routetest.Do(t, app, http.MethodPost, "/api/timetable", payload, token)
	require.Equal(t, 201, resp.StatusCode)

	// Moving the second entry onto the first entry's day double-books the teacher.
	resp = routetest.Do(t, app, http.MethodPut, "/api/timetable/2", map[string]interface{}{
		"dayOfWeek": 1,
	}, token)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestDeleteTimetableEntry(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token)
	require.Equal(t, 201, resp.StatusCode)

	resp = routetest.Do(t, app, http.MethodDelete, "/api/timetable/1", nil, token)
	assert.Equal(t, 200, resp.StatusCode)

	resp = routetest.Do(t, app, http.MethodDelete, "/api/timetable/1", nil, token)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestTimetableFilters(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	require.Equal(t, 201, routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 1, 1), token).StatusCode)
	require.Equal(t, 201, routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(1, 2, 2), token).StatusCode)
	require.Equal(t, 201, routetest.Do(t, app, http.MethodPost, "/api/timetable", entryPayload(2, 1, 2), token).StatusCode)

	resp := routetest.Do(t, app, http.MethodGet, "/api/timetable/teacher/1", nil, token)
	require.Equal(t, 200, resp.StatusCode)
	var entries []models.TimetableEntry
	routetest.DecodeJSON(t, resp, &entries)
	assert.Len(t, entries, 2)

	resp = routetest.Do(t, app, http.MethodGet, "/api/timetable/day/2", nil, token)
	require.Equal(t, 200, resp.StatusCode)
	routetest.DecodeJSON(t, resp, &entries)
	assert.Len(t, entries, 2)

	resp = routetest.Do(t, app, http.MethodGet, "/api/timetable/day/9", nil, token)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestTimetableRejectsMalformedParams(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	resp := routetest.Do(t, app, http.MethodGet, "/api/timetable/teacher/abc", nil, token)
	require.Equal(t, 400, resp.StatusCode)
	var out struct {
		Error string `json:"error"`
	}
	routetest.DecodeJSON(t, resp, &out)
	assert.Equal(t, "Invalid id", out.Error)

	resp = routetest.Do(t, app, http.MethodDelete, "/api/timetable/abc", nil, token)
	assert.Equal(t, 400, resp.StatusCode)
}
