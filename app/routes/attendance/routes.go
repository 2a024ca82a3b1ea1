package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupAttendanceRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Get("/classsession/:id", GetAttendanceBySessionAPI)
	api.Get("/session/:id", GetAttendanceBySessionAPI)
	api.Post("/", RecordAttendanceAPI)
	api.Post("/batch", RecordAttendanceBatchAPI)
}
