package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupSubjectRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSubjectsAPI)
	api.Post("/", auth.AdminMiddleware, CreateSubjectAPI)
}
