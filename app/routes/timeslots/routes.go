package timeslots

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupTimeSlotRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/timeslots")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTimeSlotsAPI)
	api.Post("/", auth.AdminMiddleware, CreateTimeSlotAPI)
}
