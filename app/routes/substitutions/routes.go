package substitutions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupSubstitutionRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/substitutions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSubstitutionsAPI)
	api.Get("/teacher/:id", GetSubstitutionsByTeacherAPI)
	api.Post("/", auth.AdminMiddleware, CreateSubstitutionAPI)
}
