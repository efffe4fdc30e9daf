package projects

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

// validateMembers checks that every referenced user exists and returns the
// ids of the missing ones.
func validateMembers(db *sql.DB, memberIDs []string) ([]string, error) {
	missing := []string{}
	for _, id := range memberIDs {
		exists, err := database.UserExists(db, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func CreateProjectAPI(c *fiber.Ctx) error {
	type CreateProjectRequest struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Deadline    string   `json:"deadline"`
		LeaderID    string   `json:"leader_id"`
		TeamMembers []string `json:"team_members"`
	}

	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Deadline) == "" || strings.TrimSpace(req.LeaderID) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name, deadline and leader_id are required"})
	}

	db := config.GetDB()

	exists, err := database.UserExists(db, req.LeaderID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Leader not found"})
	}

	missing, err := validateMembers(db, req.TeamMembers)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Team members not found", "missing": missing})
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		LeaderID:    req.LeaderID,
	}

	if err := CreateProject(db, project, req.TeamMembers); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create project"})
	}

	created, err := GetProjectByID(db, project.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Project created successfully",
		"project": created,
	})
}

func GetProjectsAPI(c *fiber.Ctx) error {
	projects, err := GetAllProjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}

	return c.JSON(fiber.Map{
		"projects": projects,
		"count":    len(projects),
	})
}

func GetProjectAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project id"})
	}
	project, err := GetProjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project"})
	}

	return c.JSON(fiber.Map{"project": project})
}

func UpdateProjectAPI(c *fiber.Ctx) error {
	type UpdateProjectRequest struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Deadline    *string   `json:"deadline"`
		LeaderID    *string   `json:"leader_id"`
		TeamMembers *[]string `json:"team_members"`
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project id"})
	}
	db := config.GetDB()

	project, err := GetProjectByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project"})
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Deadline != nil {
		project.Deadline = *req.Deadline
	}
	if req.LeaderID != nil {
		exists, err := database.UserExists(db, *req.LeaderID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if !exists {
			return c.Status(400).JSON(fiber.Map{"error": "Leader not found"})
		}
		project.LeaderID = *req.LeaderID
	}

	_, err = db.Exec(
		`UPDATE projects SET name = $1, description = $2, deadline = $3, leader_id = $4, updated_at = NOW() WHERE id = $5`,
		project.Name, project.Description, project.Deadline, project.LeaderID, id,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update project"})
	}

	if req.TeamMembers != nil {
		missing, err := validateMembers(db, *req.TeamMembers)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if len(missing) > 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Team members not found", "missing": missing})
		}
		if err := ReplaceProjectMembers(db, id, *req.TeamMembers); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update team members"})
		}
	}

	updated, err := GetProjectByID(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project"})
	}

	return c.JSON(fiber.Map{
		"message": "Project updated successfully",
		"project": updated,
	})
}

func DeleteProjectAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project id"})
	}
	if err := DeleteProject(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete project"})
	}

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
