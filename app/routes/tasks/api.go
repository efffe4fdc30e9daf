package tasks

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

const taskColumns = `t.id, t.project_id, t.name, t.description, t.assigned_to, t.status,
	t.priority, to_char(t.due_date, 'YYYY-MM-DD'), t.updated_by, t.created_at, t.updated_at,
	p.name, u.name`

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	t := &models.Task{}
	var description sql.NullString
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Name, &description, &t.AssignedTo, &t.Status,
		&t.Priority, &t.DueDate, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt,
		&t.ProjectName, &t.AssigneeName,
	)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	return t, nil
}

func getTask(db *sql.DB, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		LEFT JOIN users u ON t.assigned_to = u.id
		WHERE t.id = $1`
	return scanTask(db.QueryRow(query, id))
}

func CreateTaskAPI(c *fiber.Ctx) error {
	type CreateTaskRequest struct {
		ProjectID   string `json:"project_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		AssignedTo  string `json:"assigned_to"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.Name) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "project_id and name are required"})
	}
	if req.Priority == "" {
		req.Priority = string(models.PriorityMedium)
	}
	if !models.ValidTaskPriority(req.Priority) {
		return c.Status(400).JSON(fiber.Map{"error": "priority must be Low, Medium or High"})
	}

	db := config.GetDB()

	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, req.ProjectID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Project not found"})
	}
	if req.AssignedTo != "" {
		exists, err := database.UserExists(db, req.AssignedTo)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if !exists {
			return c.Status(400).JSON(fiber.Map{"error": "Assignee not found"})
		}
	}

	var assignedTo, dueDate *string
	if req.AssignedTo != "" {
		assignedTo = &req.AssignedTo
	}
	if req.DueDate != "" {
		dueDate = &req.DueDate
	}

	tx, err := db.Begin()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}
	defer tx.Rollback()

	var taskID string
	err = tx.QueryRow(
		`INSERT INTO tasks (project_id, name, description, assigned_to, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`,
		req.ProjectID, req.Name, req.Description, assignedTo, models.TaskPending, req.Priority, dueDate,
	).Scan(&taskID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}

	if _, err := tx.Exec(`UPDATE projects SET total_tasks = total_tasks + 1, updated_at = NOW() WHERE id = $1`, req.ProjectID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}

	if err := tx.Commit(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}

	task, err := getTask(db, taskID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Task created successfully",
		"task":    task,
	})
}

func GetTasksAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	query := `SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		LEFT JOIN users u ON t.assigned_to = u.id
		ORDER BY t.created_at DESC`

	// Optional filter by project
	args := []interface{}{}
	if projectID := c.Query("project_id"); projectID != "" {
		query = `SELECT ` + taskColumns + `
			FROM tasks t
			JOIN projects p ON t.project_id = p.id
			LEFT JOIN users u ON t.assigned_to = u.id
			WHERE t.project_id = $1
			ORDER BY t.created_at DESC`
		args = append(args, projectID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
	}

	return c.JSON(fiber.Map{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func GetTaskAPI(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}
	task, err := getTask(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	return c.JSON(fiber.Map{"task": task})
}

// UpdateTaskStatusAPI moves a task to a new status and records who did it.
func UpdateTaskStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		TaskID string `json:"task_id"`
		Status string `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if _, err := uuid.Parse(req.TaskID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task_id"})
	}
	if !models.ValidTaskStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "status must be Pending, In Progress or Completed"})
	}

	userID := c.Locals("user_id").(string)
	db := config.GetDB()

	result, err := db.Exec(
		`UPDATE tasks SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3`,
		req.Status, userID, req.TaskID,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task status"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	task, err := getTask(db, req.TaskID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	return c.JSON(fiber.Map{
		"message": "Task status updated",
		"task":    task,
	})
}

func DeleteTaskAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}
	db := config.GetDB()

	tx, err := db.Begin()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	defer tx.Rollback()

	var projectID string
	err = tx.QueryRow(`SELECT project_id FROM tasks WHERE id = $1`, id).Scan(&projectID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}

	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	if _, err := tx.Exec(`UPDATE projects SET total_tasks = GREATEST(total_tasks - 1, 0), updated_at = NOW() WHERE id = $1`, projectID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}

	if err := tx.Commit(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
