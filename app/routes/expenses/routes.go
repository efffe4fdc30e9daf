package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

var db *sql.DB

func SetupExpensesRoutes(app *fiber.App, database *sql.DB) {
	db = database
	oracle := permissions.NewDBOracle(db)

	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", permissions.Require(oracle, "read", "finance_management"), GetExpensesAPI)
	api.Post("/", permissions.Require(oracle, "create", "finance_management"), CreateExpenseAPI)
	api.Delete("/:id", permissions.Require(oracle, "delete", "finance_management"), DeleteExpenseAPI)
}
