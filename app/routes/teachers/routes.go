package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupTeacherRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeachersAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Post("/", auth.AdminMiddleware, CreateTeacherAPI)
}
