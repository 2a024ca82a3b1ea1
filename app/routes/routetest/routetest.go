// Package routetest wires a full application over the in-memory store for
// handler tests.
package routetest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/attendance"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/routes/classes"
	"github.com/dclocky/SchoolPulse/app/routes/classsessions"
	"github.com/dclocky/SchoolPulse/app/routes/homework"
	"github.com/dclocky/SchoolPulse/app/routes/imports"
	"github.com/dclocky/SchoolPulse/app/routes/settings"
	"github.com/dclocky/SchoolPulse/app/routes/students"
	"github.com/dclocky/SchoolPulse/app/routes/subjects"
	"github.com/dclocky/SchoolPulse/app/routes/substitutions"
	"github.com/dclocky/SchoolPulse/app/routes/teachers"
	"github.com/dclocky/SchoolPulse/app/routes/timeslots"
	"github.com/dclocky/SchoolPulse/app/routes/timetable"
	"github.com/dclocky/SchoolPulse/app/storage/memory"
)

// NewApp builds the Fiber app with every route registered against a fresh
// in-memory store.
func NewApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	store := memory.New()
	app := fiber.New()

	auth.SetupAuthRoutes(app, store)
	timetable.SetupTimetableRoutes(app, store)
	classsessions.SetupClassSessionRoutes(app, store)
	attendance.SetupAttendanceRoutes(app, store)
	homework.SetupHomeworkRoutes(app, store)
	substitutions.SetupSubstitutionRoutes(app, store)
	teachers.SetupTeacherRoutes(app, store)
	students.SetupStudentRoutes(app, store)
	subjects.SetupSubjectRoutes(app, store)
	classes.SetupClassRoutes(app, store)
	timeslots.SetupTimeSlotRoutes(app, store)
	settings.SetupSettingsRoutes(app, store)
	imports.SetupImportRoutes(app, store)

	return app, store
}

// SeedAdmin creates an admin account in the store and returns it with a
// valid token.
func SeedAdmin(t *testing.T, store *memory.Store) (*models.User, string) {
	t.Helper()
	return seedUser(t, store, "admin", models.RoleAdmin)
}

// SeedTeacher creates a teacher account in the store and returns it with a
// valid token.
func SeedTeacher(t *testing.T, store *memory.Store) (*models.User, string) {
	t.Helper()
	return seedUser(t, store, "teacher", models.RoleTeacher)
}

func seedUser(t *testing.T, store *memory.Store, username, role string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username:  username,
		Password:  "not-used-by-token-auth",
		Email:     username + "@school.edu",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, store.CreateUser(user))

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)
	return user, token
}

// Do sends a JSON request through the app, attaching the token as a bearer
// header when set, and returns the response.
func Do(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON reads the response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
