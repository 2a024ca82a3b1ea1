package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dclocky/SchoolPulse/app/config"
	"github.com/dclocky/SchoolPulse/app/routes/attendance"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/routes/classes"
	"github.com/dclocky/SchoolPulse/app/routes/classsessions"
	"github.com/dclocky/SchoolPulse/app/routes/homework"
	"github.com/dclocky/SchoolPulse/app/routes/imports"
	"github.com/dclocky/SchoolPulse/app/routes/settings"
	"github.com/dclocky/SchoolPulse/app/routes/students"
	"github.com/dclocky/SchoolPulse/app/routes/subjects"
	"github.com/dclocky/SchoolPulse/app/routes/substitutions"
	"github.com/dclocky/SchoolPulse/app/routes/teachers"
	"github.com/dclocky/SchoolPulse/app/routes/timeslots"
	"github.com/dclocky/SchoolPulse/app/routes/timetable"
	"github.com/dclocky/SchoolPulse/app/services"
	"github.com/dclocky/SchoolPulse/app/storage"
	"github.com/dclocky/SchoolPulse/app/storage/memory"
	"github.com/dclocky/SchoolPulse/app/storage/postgres"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func openStore(cfg *config.Config) storage.Store {
	if cfg.Storage == "memory" {
		log.Println("Using in-memory store")
		return memory.New()
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	store := postgres.New(db)
	if err := store.Bootstrap(); err != nil {
		log.Fatal("Failed to bootstrap schema:", err)
	}
	return store
}

func main() {
	cfg := config.Load()

	store := openStore(cfg)

	if cfg.SeedData {
		if err := services.SeedDefaults(store); err != nil {
			log.Fatal("Failed to seed default data:", err)
		}
	}

	// Start background scheduler
	services.StartScheduler(store)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(recover.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app, store)

	// Setup timetable routes
	timetable.SetupTimetableRoutes(app, store)

	// Setup class session routes
	classsessions.SetupClassSessionRoutes(app, store)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app, store)

	// Setup homework routes
	homework.SetupHomeworkRoutes(app, store)

	// Setup substitution routes
	substitutions.SetupSubstitutionRoutes(app, store)

	// Setup reference data routes
	teachers.SetupTeacherRoutes(app, store)
	students.SetupStudentRoutes(app, store)
	subjects.SetupSubjectRoutes(app, store)
	classes.SetupClassRoutes(app, store)
	timeslots.SetupTimeSlotRoutes(app, store)

	// Setup settings routes
	settings.SetupSettingsRoutes(app, store)

	// Setup CSV import routes
	imports.SetupImportRoutes(app, store)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
