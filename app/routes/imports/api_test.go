package imports_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/routetest"
)

func uploadCSV(t *testing.T, path, csv, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "upload.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestImportStudents(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	require.NoError(t, store.CreateClass(&models.Class{Name: "10A", Grade: "10", Section: "A"}))

	csv := "firstName,lastName,classId,email\n" +
		"Ada,Lovelace,1,ada@school.edu\n" +
		"Alan,Turing,1,\n"
	req := uploadCSV(t, "/api/imports/students", csv, token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	students, err := store.Students()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ada", students[0].FirstName)
	require.NotNil(t, students[0].Email)
	assert.Equal(t, "ada@school.edu", *students[0].Email)
	assert.Nil(t, students[1].Email)
}

func TestImportStudentsRejectsBadRows(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)
	require.NoError(t, store.CreateClass(&models.Class{Name: "10A", Grade: "10", Section: "A"}))

	cases := map[string]string{
		"missing column": "firstName,lastName\nAda,Lovelace\n",
		"bad class id":   "firstName,lastName,classId\nAda,Lovelace,zero\n",
		"unknown class":  "firstName,lastName,classId\nAda,Lovelace,99\n",
		"blank name":     "firstName,lastName,classId\n,Lovelace,1\n",
		"no rows":        "firstName,lastName,classId\n",
	}
	for name, csv := range cases {
		req := uploadCSV(t, "/api/imports/students", csv, token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err, name)
		assert.Equal(t, 400, resp.StatusCode, name)
	}

	// Nothing was written by any rejected upload.
	students, err := store.Students()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestImportStudentsRequiresAdmin(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedTeacher(t, store)

	req := uploadCSV(t, "/api/imports/students", "firstName,lastName,classId\nAda,Lovelace,1\n", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestImportTeachers(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	csv := "username,password,email,firstName,lastName,subjects\n" +
		"glopez,changeme123,glopez@school.edu,Gabriela,Lopez,Mathematics;Science\n"
	req := uploadCSV(t, "/api/imports/teachers", csv, token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	teacher, err := store.UserByUsername("glopez")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, teacher.Role)
	assert.Equal(t, []string{"Mathematics", "Science"}, teacher.Subjects)
	// Password is stored hashed.
	assert.NotEqual(t, "changeme123", teacher.Password)
}

func TestImportTeachersRejectsDuplicateUsername(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	csv := "username,password,email,firstName,lastName\n" +
		"admin,changeme123,dup@school.edu,Du,Plicate\n"
	req := uploadCSV(t, "/api/imports/teachers", csv, token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestImportClasses(t *testing.T) {
	app, store := routetest.NewApp(t)
	_, token := routetest.SeedAdmin(t, store)

	csv := "name,grade,section,roomNumber\n" +
		"10A,10,A,101\n" +
		"11B,11,B,\n"
	req := uploadCSV(t, "/api/imports/classes", csv, token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	classes, err := store.Classes()
	require.NoError(t, err)
	require.Len(t, classes, 2)
	require.NotNil(t, classes[0].RoomNumber)
	assert.Equal(t, "101", *classes[0].RoomNumber)
	assert.Nil(t, classes[1].RoomNumber)
}
