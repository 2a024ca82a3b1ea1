package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupSettingsRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSettingsAPI)
	api.Put("/", auth.AdminMiddleware, SaveSettingsAPI)
}
