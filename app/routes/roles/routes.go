package roles

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupRolesRoutes(app *fiber.App) {
	api := app.Group("/api/roles")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateRoleAPI)
	api.Get("/", GetRolesAPI)
	api.Put("/:id", UpdateRoleAPI)
	api.Delete("/:id", DeleteRoleAPI)
}
