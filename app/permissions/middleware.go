package permissions

import "github.com/gofiber/fiber/v2"

// Require returns a route guard that rejects the request with 403 unless the
// authenticated user holds the (action, module) permission. It must run after
// the auth middleware so that user_id is present in locals.
func Require(oracle Oracle, action, module string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}

		allowed, err := oracle.Allowed(userID, action, module)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check permissions"})
		}
		if !allowed {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Next()
	}
}
