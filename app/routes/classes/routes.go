package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupClassRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Post("/", auth.AdminMiddleware, CreateClassAPI)
}
