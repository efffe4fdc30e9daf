package roles

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
)

func CreateRoleAPI(c *fiber.Ctx) error {
	type CreateRoleRequest struct {
		Name        string            `json:"name"`
		Permissions []PermissionGrant `json:"permissions"`
	}

	var req CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Role name is required"})
	}

	db := config.GetDB()

	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`, req.Name).Scan(&exists)
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Role name already exists"})
	}

	ids, unknown, err := ResolvePermissionIDs(db, req.Permissions)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve permissions"})
	}
	if len(unknown) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Unknown permissions",
			"unknown": unknown,
		})
	}

	roleID, err := CreateRole(db, req.Name, ids)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create role"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Role created successfully",
		"role": fiber.Map{
			"id":   roleID,
			"name": req.Name,
		},
	})
}

// GetRolesAPI lists roles with their permissions grouped by module.
func GetRolesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	query := `SELECT r.id, r.name, p.action, p.module
		FROM roles r
		LEFT JOIN role_permissions rp ON r.id = rp.role_id
		LEFT JOIN permissions p ON rp.permission_id = p.id
		ORDER BY r.name, p.module, p.action`

	rows, err := db.Query(query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	defer rows.Close()

	type roleEntry struct {
		ID      string
		Name    string
		Modules map[string][]string
		Order   []string
	}
	byID := map[string]*roleEntry{}
	order := []string{}

	for rows.Next() {
		var id, name string
		var action, module sql.NullString
		if err := rows.Scan(&id, &name, &action, &module); err != nil {
			continue
		}

		entry, ok := byID[id]
		if !ok {
			entry = &roleEntry{ID: id, Name: name, Modules: map[string][]string{}}
			byID[id] = entry
			order = append(order, id)
		}
		if action.Valid && module.Valid {
			if _, seen := entry.Modules[module.String]; !seen {
				entry.Order = append(entry.Order, module.String)
			}
			entry.Modules[module.String] = append(entry.Modules[module.String], action.String)
		}
	}

	roles := make([]fiber.Map, 0, len(order))
	for _, id := range order {
		entry := byID[id]
		permissions := make([]fiber.Map, 0, len(entry.Order))
		for _, module := range entry.Order {
			permissions = append(permissions, fiber.Map{
				"module":  module,
				"actions": entry.Modules[module],
			})
		}
		roles = append(roles, fiber.Map{
			"id":          entry.ID,
			"name":        entry.Name,
			"permissions": permissions,
		})
	}

	return c.JSON(fiber.Map{
		"roles": roles,
		"count": len(roles),
	})
}

func UpdateRoleAPI(c *fiber.Ctx) error {
	type UpdateRoleRequest struct {
		Name        string            `json:"name"`
		Permissions []PermissionGrant `json:"permissions"`
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()

	ids, unknown, err := ResolvePermissionIDs(db, req.Permissions)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve permissions"})
	}
	if len(unknown) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Unknown permissions",
			"unknown": unknown,
		})
	}

	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role id"})
	}

	if err := ReplaceRolePermissions(db, c.Params("id"), req.Name, ids); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update role"})
	}

	return c.JSON(fiber.Map{"message": "Role updated successfully"})
}

func DeleteRoleAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role id"})
	}
	db := config.GetDB()

	if err := DeleteRole(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete role"})
	}

	return c.JSON(fiber.Map{"message": "Role deleted successfully"})
}
