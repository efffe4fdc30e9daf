package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/attendance"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/departments"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/designations"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/expenses"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/leaves"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/projects"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/roles"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/tasks"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/users"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/services"
)

// customErrorHandler returns every unhandled error as {"error": ...} JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Punch times and leave dates are interpreted in this zone
	loc, err := time.LoadLocation(config.AppConfig.TimeZone)
	if err != nil {
		log.Printf("Warning: failed to load time zone %q, falling back to UTC: %v", config.AppConfig.TimeZone, err)
		loc = time.UTC
	}
	time.Local = loc
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup users routes
	users.SetupUsersRoutes(app)

	// Setup roles routes
	roles.SetupRolesRoutes(app)

	// Setup departments routes
	departments.SetupDepartmentsRoutes(app)

	// Setup designations routes
	designations.SetupDesignationsRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup leaves routes
	leaves.SetupLeavesRoutes(app)

	// Setup expenses routes
	expenses.SetupExpensesRoutes(app, config.GetDB())

	// Setup projects routes
	projects.SetupProjectsRoutes(app)

	// Setup tasks routes
	tasks.SetupTasksRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
