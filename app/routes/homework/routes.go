package homework

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupHomeworkRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/homework")
	api.Use(auth.AuthMiddleware)
	api.Get("/classsession/:id", GetHomeworkBySessionAPI)
	api.Get("/session/:id", GetHomeworkBySessionAPI)
	api.Post("/", CreateHomeworkAPI)
	api.Put("/:id", UpdateHomeworkAPI)
}
