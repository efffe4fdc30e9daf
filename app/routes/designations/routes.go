package designations

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func SetupDesignationsRoutes(app *fiber.App) {
	api := app.Group("/api/designations")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateDesignationAPI)
	api.Get("/", GetDesignationsAPI)
	api.Get("/:id", GetDesignationAPI)
	api.Put("/:id", UpdateDesignationAPI)
	api.Delete("/:id", DeleteDesignationAPI)
}
