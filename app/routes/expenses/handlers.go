package expenses

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses, err := GetAllExpenses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	return c.JSON(fiber.Map{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	type CreateExpenseRequest struct {
		Date         string `json:"date"`
		Amount       int64  `json:"amount"`
		Description  string `json:"description"`
		UserID       string `json:"user_id"`
		DepartmentID string `json:"department_id"`
		ExpenseSlip  string `json:"expense_slip"`
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.DepartmentID) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "date, user_id and department_id are required"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be greater than zero"})
	}
	if len(req.Description) > 200 {
		return c.Status(400).JSON(fiber.Map{"error": "Description must be 200 characters or less"})
	}

	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, req.UserID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "User not found"})
	}
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, req.DepartmentID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Department not found"})
	}

	expense := &models.Expense{
		Date:         req.Date,
		Amount:       req.Amount,
		Description:  req.Description,
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
	}
	if req.ExpenseSlip != "" {
		expense.ExpenseSlip = &req.ExpenseSlip
	}

	if err := CreateExpense(db, expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense id"})
	}
	if err := DeleteExpense(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}

	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
