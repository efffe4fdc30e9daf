package departments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupDepartmentsRoutes(app *fiber.App) {
	api := app.Group("/api/departments")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateDepartmentAPI)
	api.Get("/", GetDepartmentsAPI)
	api.Get("/:id", GetDepartmentAPI)
	api.Put("/:id", UpdateDepartmentAPI)
	api.Delete("/:id", DeleteDepartmentAPI)
}
