package projects

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

// CreateProject inserts the project and its team member links in one
// transaction.
func CreateProject(db *sql.DB, p *models.Project, memberIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO projects (name, description, deadline, leader_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query, p.Name, p.Description, p.Deadline, p.LeaderID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertProjectMembers(tx, p.ID, memberIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertProjectMembers(tx *sql.Tx, projectID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(memberIDs))
	valueArgs := make([]interface{}, 0, len(memberIDs)+1)
	valueArgs = append(valueArgs, projectID)
	for i, userID := range memberIDs {
		valueStrings = append(valueStrings, fmt.Sprintf("($1, $%d)", i+2))
		valueArgs = append(valueArgs, userID)
	}

	query := fmt.Sprintf(
		`INSERT INTO project_members (project_id, user_id) VALUES %s ON CONFLICT DO NOTHING`,
		strings.Join(valueStrings, ", "),
	)
	_, err := tx.Exec(query, valueArgs...)
	return err
}

// ReplaceProjectMembers swaps the project's team for the given set.
func ReplaceProjectMembers(db *sql.DB, projectID string, memberIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM project_members WHERE project_id = $1`, projectID); err != nil {
		return err
	}
	if err := insertProjectMembers(tx, projectID, memberIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func GetProjectByID(db *sql.DB, id string) (*models.Project, error) {
	p := &models.Project{TeamMembers: []*models.ProjectMember{}}
	var description sql.NullString
	leader := &models.ProjectMember{}

	query := `SELECT p.id, p.name, p.description, to_char(p.deadline, 'YYYY-MM-DD'), p.leader_id,
			p.total_tasks, p.created_at, p.updated_at, u.name, u.email
		FROM projects p
		JOIN users u ON p.leader_id = u.id
		WHERE p.id = $1`

	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.Name, &description, &p.Deadline, &p.LeaderID,
		&p.TotalTasks, &p.CreatedAt, &p.UpdatedAt, &leader.Name, &leader.Email,
	)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	leader.ID = p.LeaderID
	p.Leader = leader

	rows, err := db.Query(
		`SELECT u.id, u.name, u.email
		FROM project_members pm
		JOIN users u ON pm.user_id = u.id
		WHERE pm.project_id = $1
		ORDER BY u.name`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		m := &models.ProjectMember{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			continue
		}
		p.TeamMembers = append(p.TeamMembers, m)
	}

	return p, nil
}

func GetAllProjects(db *sql.DB) ([]*models.Project, error) {
	query := `SELECT p.id FROM projects p ORDER BY p.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}

	projects := []*models.Project{}
	for _, id := range ids {
		p, err := GetProjectByID(db, id)
		if err != nil {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func DeleteProject(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
