package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupTimetableRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTimetableAPI)
	api.Get("/teacher/:id", GetTimetableByTeacherAPI)
	api.Get("/day/:day", GetTimetableByDayAPI)
	api.Post("/", auth.AdminMiddleware, CreateTimetableEntryAPI)
	api.Put("/:id", auth.AdminMiddleware, UpdateTimetableEntryAPI)
	api.Delete("/:id", auth.AdminMiddleware, DeleteTimetableEntryAPI)
}
