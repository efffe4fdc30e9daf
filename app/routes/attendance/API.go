package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/services"
)

// PunchAPI records the next punch event for the caller's current day. The
// service decides whether this is the punch-in or the punch-out.
func PunchAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := service.Punch(userID)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Punch recorded",
		"punch":   result,
	})
}

// StatsAPI returns the caller's month/week/year hour totals and overtime.
func StatsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := service.Stats(userID)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"stats": stats})
}

// StatsAllAPI returns company-wide totals plus per-record detail. Requires
// the read/attendance permission.
func StatsAllAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := service.StatsAll(userID)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"stats": stats,
		"count": len(stats.Records),
	})
}
