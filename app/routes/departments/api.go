package departments

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

func CreateDepartmentAPI(c *fiber.Ctx) error {
	type CreateDepartmentRequest struct {
		Name string `json:"name"`
	}

	var req CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Department name is required"})
	}

	db := config.GetDB()

	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`, req.Name).Scan(&exists)
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Department name already exists"})
	}

	dept := &models.Department{Name: req.Name}
	err := db.QueryRow(
		`INSERT INTO departments (name, created_at, updated_at) VALUES ($1, NOW(), NOW()) RETURNING id, created_at, updated_at`,
		req.Name,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Department created successfully",
		"department": dept,
	})
}

// GetDepartmentsAPI lists departments with their designations embedded.
func GetDepartmentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	rows, err := db.Query(`SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	defer rows.Close()

	departments := []*models.Department{}
	byID := map[string]*models.Department{}
	for rows.Next() {
		d := &models.Department{Designations: []*models.Designation{}}
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			continue
		}
		departments = append(departments, d)
		byID[d.ID] = d
	}

	desigRows, err := db.Query(
		`SELECT id, department_id, name, department_name, created_at, updated_at FROM designations ORDER BY name`,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch designations"})
	}
	defer desigRows.Close()

	for desigRows.Next() {
		des := &models.Designation{}
		if err := desigRows.Scan(&des.ID, &des.DepartmentID, &des.Name, &des.DepartmentName, &des.CreatedAt, &des.UpdatedAt); err != nil {
			continue
		}
		if dept, ok := byID[des.DepartmentID]; ok {
			dept.Designations = append(dept.Designations, des)
		}
	}

	return c.JSON(fiber.Map{
		"departments": departments,
		"count":       len(departments),
	})
}

func GetDepartmentAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department id"})
	}
	db := config.GetDB()

	dept := &models.Department{Designations: []*models.Designation{}}
	err := db.QueryRow(`SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`, c.Params("id")).
		Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch department"})
	}

	rows, err := db.Query(
		`SELECT id, department_id, name, department_name, created_at, updated_at FROM designations WHERE department_id = $1 ORDER BY name`,
		dept.ID,
	)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			des := &models.Designation{}
			if err := rows.Scan(&des.ID, &des.DepartmentID, &des.Name, &des.DepartmentName, &des.CreatedAt, &des.UpdatedAt); err == nil {
				dept.Designations = append(dept.Designations, des)
			}
		}
	}

	return c.JSON(fiber.Map{"department": dept})
}

func UpdateDepartmentAPI(c *fiber.Ctx) error {
	type UpdateDepartmentRequest struct {
		Name string `json:"name"`
	}

	var req UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Department name is required"})
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department id"})
	}
	db := config.GetDB()

	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1 AND id::text <> $2)`, req.Name, id).Scan(&exists)
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Department name already exists"})
	}

	tx, err := db.Begin()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE departments SET name = $1, updated_at = NOW() WHERE id = $2`, req.Name, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
	}

	// Keep the denormalized name on designations in step.
	if _, err := tx.Exec(`UPDATE designations SET department_name = $1, updated_at = NOW() WHERE department_id = $2`, req.Name, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}

	if err := tx.Commit(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}

	return c.JSON(fiber.Map{"message": "Department updated successfully"})
}

func DeleteDepartmentAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department id"})
	}
	db := config.GetDB()

	result, err := db.Exec(`DELETE FROM departments WHERE id = $1`, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
	}

	return c.JSON(fiber.Map{"message": "Department deleted successfully"})
}
