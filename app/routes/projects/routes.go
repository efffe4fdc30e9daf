package projects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupProjectsRoutes(app *fiber.App) {
	oracle := permissions.NewDBOracle(config.GetDB())

	api := app.Group("/api/projects")
	api.Use(auth.AuthMiddleware)

	api.Post("/", permissions.Require(oracle, "create", "project_management"), CreateProjectAPI)
	api.Get("/", permissions.Require(oracle, "view", "project_management"), GetProjectsAPI)
	api.Get("/:id", permissions.Require(oracle, "view", "project_management"), GetProjectAPI)
	api.Put("/:id", permissions.Require(oracle, "update", "project_management"), UpdateProjectAPI)
	api.Delete("/:id", permissions.Require(oracle, "delete", "project_management"), DeleteProjectAPI)
}
