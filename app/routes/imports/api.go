package imports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

// ImportStudentsAPI bulk-loads students from an uploaded CSV with the header
// firstName,lastName,classId,email. Rows are validated up front; a bad row
// aborts the import before anything is written.
func ImportStudentsAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read upload"})
	}
	defer file.Close()

	students, err := parseStudentCSV(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if len(students) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "CSV contains no student rows"})
	}

	classIDs := map[int]bool{}
	for _, s := range students {
		if classIDs[s.ClassID] {
			continue
		}
		if _, err := store.Class(s.ClassID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Unknown class id %d", s.ClassID)})
			}
			log.Printf("Error looking up class %d: %v", s.ClassID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
		}
		classIDs[s.ClassID] = true
	}

	imported := make([]models.Student, 0, len(students))
	for i := range students {
		if err := store.CreateStudent(&students[i]); err != nil {
			log.Printf("Error importing student %s %s: %v", students[i].FirstName, students[i].LastName, err)
			return c.Status(500).JSON(fiber.Map{
				"error":    "Import failed partway",
				"imported": len(imported),
			})
		}
		imported = append(imported, students[i])
	}

	return c.Status(201).JSON(fiber.Map{
		"imported": len(imported),
		"students": imported,
	})
}

// ImportTeachersAPI bulk-creates teacher accounts from a CSV with the header
// username,password,email,firstName,lastName,subjects. Subjects is optional
// and semicolon-separated.
func ImportTeachersAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read upload"})
	}
	defer file.Close()

	teachers, err := parseTeacherCSV(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if len(teachers) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "CSV contains no teacher rows"})
	}

	for i := range teachers {
		if _, err := store.UserByUsername(teachers[i].Username); err == nil {
			return c.Status(409).JSON(fiber.Map{"error": fmt.Sprintf("Username %q already taken", teachers[i].Username)})
		} else if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Error checking username: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	imported := 0
	for i := range teachers {
		if err := store.CreateUser(&teachers[i]); err != nil {
			log.Printf("Error importing teacher %s: %v", teachers[i].Username, err)
			return c.Status(500).JSON(fiber.Map{"error": "Import failed partway", "imported": imported})
		}
		imported++
	}
	return c.Status(201).JSON(fiber.Map{"imported": imported, "teachers": teachers})
}

// ImportClassesAPI bulk-creates classes from a CSV with the header
// name,grade,section,roomNumber.
func ImportClassesAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read upload"})
	}
	defer file.Close()

	classes, err := parseClassCSV(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if len(classes) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "CSV contains no class rows"})
	}

	imported := 0
	for i := range classes {
		if err := store.CreateClass(&classes[i]); err != nil {
			log.Printf("Error importing class %s: %v", classes[i].Name, err)
			return c.Status(500).JSON(fiber.Map{"error": "Import failed partway", "imported": imported})
		}
		imported++
	}
	return c.Status(201).JSON(fiber.Map{"imported": imported, "classes": classes})
}

// readHeader maps column names to indexes and checks the required set.
func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("CSV is empty")
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("CSV missing required column %q", name)
		}
	}
	return col, nil
}

func optional(row []string, col map[string]int, name string) string {
	if i, ok := col[name]; ok && i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseStudentCSV(r io.Reader) ([]models.Student, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	col, err := readHeader(reader, []string{"firstName", "lastName", "classId"})
	if err != nil {
		return nil, err
	}

	var students []models.Student
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed row", line)
		}

		classID, err := strconv.Atoi(strings.TrimSpace(row[col["classId"]]))
		if err != nil || classID <= 0 {
			return nil, fmt.Errorf("line %d: invalid classId", line)
		}
		first := strings.TrimSpace(row[col["firstName"]])
		last := strings.TrimSpace(row[col["lastName"]])
		if first == "" || last == "" {
			return nil, fmt.Errorf("line %d: firstName and lastName are required", line)
		}

		student := models.Student{FirstName: first, LastName: last, ClassID: classID}
		if email := optional(row, col, "email"); email != "" {
			student.Email = &email
		}
		students = append(students, student)
	}
	return students, nil
}

func parseTeacherCSV(r io.Reader) ([]models.User, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	col, err := readHeader(reader, []string{"username", "password", "email", "firstName", "lastName"})
	if err != nil {
		return nil, err
	}

	var teachers []models.User
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed row", line)
		}

		username := strings.TrimSpace(row[col["username"]])
		password := strings.TrimSpace(row[col["password"]])
		email := strings.TrimSpace(row[col["email"]])
		first := strings.TrimSpace(row[col["firstName"]])
		last := strings.TrimSpace(row[col["lastName"]])
		if username == "" || password == "" || email == "" || first == "" || last == "" {
			return nil, fmt.Errorf("line %d: username, password, email, firstName and lastName are required", line)
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to hash password", line)
		}

		teacher := models.User{
			Username:  username,
			Password:  hash,
			Email:     email,
			FirstName: first,
			LastName:  last,
			Role:      models.RoleTeacher,
		}
		if subjects := optional(row, col, "subjects"); subjects != "" {
			for _, s := range strings.Split(subjects, ";") {
				if s = strings.TrimSpace(s); s != "" {
					teacher.Subjects = append(teacher.Subjects, s)
				}
			}
		}
		teachers = append(teachers, teacher)
	}
	return teachers, nil
}

func parseClassCSV(r io.Reader) ([]models.Class, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	col, err := readHeader(reader, []string{"name", "grade", "section"})
	if err != nil {
		return nil, err
	}

	var classes []models.Class
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed row", line)
		}

		name := strings.TrimSpace(row[col["name"]])
		grade := strings.TrimSpace(row[col["grade"]])
		section := strings.TrimSpace(row[col["section"]])
		if name == "" || grade == "" || section == "" {
			return nil, fmt.Errorf("line %d: name, grade and section are required", line)
		}

		class := models.Class{Name: name, Grade: grade, Section: section}
		if room := optional(row, col, "roomNumber"); room != "" {
			class.RoomNumber = &room
		}
		classes = append(classes, class)
	}
	return classes, nil
}
