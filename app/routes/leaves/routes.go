package leaves

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/services"
)

var ledger *services.LeaveLedger

func SetupLeavesRoutes(app *fiber.App) {
	db := config.GetDB()
	ledger = services.NewLeaveLedger(db, permissions.NewDBOracle(db))

	api := app.Group("/api/leaves")
	api.Use(auth.AuthMiddleware)

	api.Post("/", ApplyLeaveAPI)
	api.Post("/:id/decision", DecideLeaveAPI)
	api.Get("/", GetLeavesAPI)
	api.Get("/user/:userId", GetUserLeavesAPI)
}
