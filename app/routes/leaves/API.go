package leaves

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/services"
)

// ApplyLeaveAPI files a leave request for the caller. The request is created
// Pending; balances are only prechecked here, not deducted.
func ApplyLeaveAPI(c *fiber.Ctx) error {
	var req services.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)

	leave, err := ledger.Apply(userID, req)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Leave request submitted",
		"leave":   leave,
	})
}

// DecideLeaveAPI approves or rejects a pending leave request.
func DecideLeaveAPI(c *fiber.Ctx) error {
	type DecisionRequest struct {
		Action string `json:"action"`
	}

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)
	leaveID := c.Params("id")
	if _, err := uuid.Parse(leaveID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid leave id"})
	}

	leave, err := ledger.Decide(userID, leaveID, req.Action)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Leave request " + string(leave.Status),
		"leave":   leave,
	})
}

// GetLeavesAPI lists every leave request. Requires view/leave.
func GetLeavesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	leaves, err := ledger.ListAll(userID)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

// GetUserLeavesAPI lists one user's leave requests. Asking about another
// user additionally requires view_all/leave.
func GetUserLeavesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetID := c.Params("userId")
	if _, err := uuid.Parse(targetID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	leaves, err := ledger.ListForUser(userID, targetID)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"leaves": leaves,
		"count":  len(leaves),
	})
}
