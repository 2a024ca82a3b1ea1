package classsessions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupClassSessionRoutes(app *fiber.App, s storage.Store) {
	store = s

	// Both spellings are served; clients use either.
	for _, prefix := range []string{"/api/classsessions", "/api/class-sessions"} {
		api := app.Group(prefix)
		api.Use(auth.AuthMiddleware)
		api.Get("/", GetClassSessionsAPI)
		api.Get("/timetable/:id", GetClassSessionsByEntryAPI)
		api.Get("/entry/:id", GetClassSessionsByEntryAPI)
		api.Get("/:id", GetClassSessionAPI)
		api.Post("/", GetOrCreateClassSessionAPI)
		api.Put("/:id", UpdateClassSessionAPI)
	}
}
