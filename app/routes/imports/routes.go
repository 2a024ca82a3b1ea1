package imports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupImportRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/imports")
	api.Use(auth.AuthMiddleware, auth.AdminMiddleware)
	api.Post("/students", ImportStudentsAPI)
	api.Post("/teachers", ImportTeachersAPI)
	api.Post("/classes", ImportClassesAPI)
}
