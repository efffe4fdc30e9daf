package designations

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

func CreateDesignationAPI(c *fiber.Ctx) error {
	type CreateDesignationRequest struct {
		Name         string `json:"name"`
		DepartmentID string `json:"department_id"`
	}

	var req CreateDesignationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.DepartmentID) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and department_id are required"})
	}

	db := config.GetDB()

	var deptName string
	err := db.QueryRow(`SELECT name FROM departments WHERE id = $1`, req.DepartmentID).Scan(&deptName)
	if err == sql.ErrNoRows {
		return c.Status(400).JSON(fiber.Map{"error": "Department not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	des := &models.Designation{
		Name:           req.Name,
		DepartmentID:   req.DepartmentID,
		DepartmentName: deptName,
	}
	err = db.QueryRow(
		`INSERT INTO designations (department_id, name, department_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		req.DepartmentID, req.Name, deptName,
	).Scan(&des.ID, &des.CreatedAt, &des.UpdatedAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create designation"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Designation created successfully",
		"designation": des,
	})
}

func GetDesignationsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	rows, err := db.Query(
		`SELECT id, department_id, name, department_name, created_at, updated_at FROM designations ORDER BY department_name, name`,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch designations"})
	}
	defer rows.Close()

	designations := []*models.Designation{}
	for rows.Next() {
		des := &models.Designation{}
		if err := rows.Scan(&des.ID, &des.DepartmentID, &des.Name, &des.DepartmentName, &des.CreatedAt, &des.UpdatedAt); err != nil {
			continue
		}
		designations = append(designations, des)
	}

	return c.JSON(fiber.Map{
		"designations": designations,
		"count":        len(designations),
	})
}

func GetDesignationAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid designation id"})
	}
	db := config.GetDB()

	des := &models.Designation{}
	err := db.QueryRow(
		`SELECT id, department_id, name, department_name, created_at, updated_at FROM designations WHERE id = $1`,
		c.Params("id"),
	).Scan(&des.ID, &des.DepartmentID, &des.Name, &des.DepartmentName, &des.CreatedAt, &des.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Designation not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch designation"})
	}

	return c.JSON(fiber.Map{"designation": des})
}

func UpdateDesignationAPI(c *fiber.Ctx) error {
	type UpdateDesignationRequest struct {
		Name         *string `json:"name"`
		DepartmentID *string `json:"department_id"`
	}

	var req UpdateDesignationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid designation id"})
	}
	db := config.GetDB()

	des := &models.Designation{}
	err := db.QueryRow(
		`SELECT id, department_id, name, department_name FROM designations WHERE id = $1`, id,
	).Scan(&des.ID, &des.DepartmentID, &des.Name, &des.DepartmentName)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Designation not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		des.Name = *req.Name
	}
	if req.DepartmentID != nil {
		var deptName string
		err := db.QueryRow(`SELECT name FROM departments WHERE id = $1`, *req.DepartmentID).Scan(&deptName)
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Department not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		des.DepartmentID = *req.DepartmentID
		des.DepartmentName = deptName
	}

	_, err = db.Exec(
		`UPDATE designations SET department_id = $1, name = $2, department_name = $3, updated_at = NOW() WHERE id = $4`,
		des.DepartmentID, des.Name, des.DepartmentName, id,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update designation"})
	}

	return c.JSON(fiber.Map{
		"message":     "Designation updated successfully",
		"designation": des,
	})
}

func DeleteDesignationAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid designation id"})
	}
	db := config.GetDB()

	result, err := db.Exec(`DELETE FROM designations WHERE id = $1`, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete designation"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Designation not found"})
	}

	return c.JSON(fiber.Map{"message": "Designation deleted successfully"})
}
