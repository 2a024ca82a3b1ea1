package substitutions_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/routetest"
	"github.com/dclocky/SchoolPulse/app/storage/memory"
)

func seedTeachers(t *testing.T, store *memory.Store) (int, int) {
	t.Helper()
	a := &models.User{Username: "t-original", Role: models.RoleTeacher}
	b := &models.User{Username: "t-substitute", Role: models.RoleTeacher}
	require.NoError(t, store.CreateUser(a))
	require.NoError(t, store.CreateUser(b))
	return a.ID, b.ID
}

func TestCreateSubstitution(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	origID, subID := seedTeachers(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": subID,
		"startDate":           "2026-03-02",
		"endDate":             "2026-03-06",
		"reason":              "sick leave",
	}, token)
	require.Equal(t, 201, resp.StatusCode)

	var sub models.Substitution
	routetest.DecodeJSON(t, resp, &sub)
	assert.NotZero(t, sub.ID)
	assert.Equal(t, origID, sub.OriginalTeacherID)
	assert.Equal(t, subID, sub.SubstituteTeacherID)
}

func TestCreateSubstitutionSingleDayRange(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	origID, subID := seedTeachers(t, store)

	// startDate == endDate is a valid one-day substitution.
	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": subID,
		"startDate":           "2026-03-02",
		"endDate":             "2026-03-02",
	}, token)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestCreateSubstitutionRejectsInvertedRange(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	origID, subID := seedTeachers(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": subID,
		"startDate":           "2026-03-06",
		"endDate":             "2026-03-02",
	}, token)
	require.Equal(t, 400, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	routetest.DecodeJSON(t, resp, &body)
	assert.Equal(t, "End date must be on or after start date", body.Error)
}

func TestCreateSubstitutionRejectsSameTeacher(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	origID, _ := seedTeachers(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": origID,
		"startDate":           "2026-03-02",
		"endDate":             "2026-03-06",
	}, token)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateSubstitutionRequiresAdmin(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)
	origID, subID := seedTeachers(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": subID,
		"startDate":           "2026-03-02",
		"endDate":             "2026-03-06",
	}, token)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestListSubstitutionsByTeacher(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	origID, subID := seedTeachers(t, store)

	resp := routetest.Do(t, app, http.MethodPost, "/api/substitutions", map[string]interface{}{
		"originalTeacherId":   origID,
		"substituteTeacherId": subID,
		"startDate":           "2026-03-02",
		"endDate":             "2026-03-06",
	}, token)
	require.Equal(t, 201, resp.StatusCode)

	// Both the original and the substitute see the assignment.
	for _, id := range []int{origID, subID} {
		resp := routetest.Do(t, app, http.MethodGet,
			"/api/substitutions/teacher/"+strconv.Itoa(id), nil, token)
		require.Equal(t, 200, resp.StatusCode)
		var subs []models.Substitution
		routetest.DecodeJSON(t, resp, &subs)
		assert.Len(t, subs, 1)
	}
}
