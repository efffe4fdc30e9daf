package tasks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupTasksRoutes(app *fiber.App) {
	oracle := permissions.NewDBOracle(config.GetDB())

	api := app.Group("/api/tasks")
	api.Use(auth.AuthMiddleware)

	api.Post("/", permissions.Require(oracle, "create", "task_management"), CreateTaskAPI)
	api.Get("/", permissions.Require(oracle, "read", "task_management"), GetTasksAPI)
	api.Post("/status", permissions.Require(oracle, "update", "task_management"), UpdateTaskStatusAPI)
	api.Get("/:id", permissions.Require(oracle, "read", "task_management"), GetTaskAPI)
	api.Delete("/:id", permissions.Require(oracle, "delete", "task_management"), DeleteTaskAPI)
}
