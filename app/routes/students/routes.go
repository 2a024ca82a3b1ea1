package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupStudentRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/class/:id", GetStudentsByClassAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", auth.AdminMiddleware, CreateStudentAPI)
}
