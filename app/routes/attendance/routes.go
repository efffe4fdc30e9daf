package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/services"
)

var service *services.AttendanceService

func SetupAttendanceRoutes(app *fiber.App) {
	db := config.GetDB()
	oracle := permissions.NewDBOracle(db)
	service = services.NewAttendanceService(db, oracle, config.AppConfig.WorkHoursPerMonth)

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/punch", PunchAPI)
	api.Get("/stats", StatsAPI)
	api.Get("/stats/all", StatsAllAPI)
}
