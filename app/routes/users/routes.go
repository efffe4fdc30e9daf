package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateUserAPI)
	api.Get("/", GetUsersAPI)
	api.Get("/:id", GetUserAPI)
	api.Put("/:id", UpdateUserAPI)
	api.Delete("/:id", DeleteUserAPI)
}
