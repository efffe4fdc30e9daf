package roles

import (
	"database/sql"
	"fmt"
	"strings"
)

// PermissionGrant is one entry of the create/update payload: a module with
// the actions to grant on it.
type PermissionGrant struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// ResolvePermissionIDs maps grant pairs to permission row ids. Pairs that do
// not exist in the catalogue come back in unknown; matching is exact and
// case-sensitive.
func ResolvePermissionIDs(db *sql.DB, grants []PermissionGrant) (ids []string, unknown []string, err error) {
	seen := map[string]bool{}
	for _, grant := range grants {
		for _, action := range grant.Actions {
			key := action + "/" + grant.Module
			if seen[key] {
				continue
			}
			seen[key] = true

			var id string
			err := db.QueryRow(`SELECT id FROM permissions WHERE action = $1 AND module = $2`, action, grant.Module).Scan(&id)
			if err == sql.ErrNoRows {
				unknown = append(unknown, key)
				continue
			}
			if err != nil {
				return nil, nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, unknown, nil
}

// CreateRole inserts the role and its permission links in one transaction.
func CreateRole(db *sql.DB, name string, permissionIDs []string) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var roleID string
	err = tx.QueryRow(
		`INSERT INTO roles (name, created_at, updated_at) VALUES ($1, NOW(), NOW()) RETURNING id`,
		name,
	).Scan(&roleID)
	if err != nil {
		return "", err
	}

	if err := insertRolePermissions(tx, roleID, permissionIDs); err != nil {
		return "", err
	}

	return roleID, tx.Commit()
}

// ReplaceRolePermissions swaps the role's grants for the given set and
// optionally renames the role.
func ReplaceRolePermissions(db *sql.DB, roleID, name string, permissionIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if name != "" {
		result, err := tx.Exec(`UPDATE roles SET name = $1, updated_at = NOW() WHERE id = $2`, name, roleID)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return sql.ErrNoRows
		}
	} else {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM roles WHERE id = $1)`, roleID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}
	}

	if _, err := tx.Exec(`DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	if err := insertRolePermissions(tx, roleID, permissionIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertRolePermissions(tx *sql.Tx, roleID string, permissionIDs []string) error {
	if len(permissionIDs) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(permissionIDs))
	valueArgs := make([]interface{}, 0, len(permissionIDs)+1)
	valueArgs = append(valueArgs, roleID)
	for i, permID := range permissionIDs {
		valueStrings = append(valueStrings, fmt.Sprintf("($1, $%d)", i+2))
		valueArgs = append(valueArgs, permID)
	}

	query := fmt.Sprintf(
		`INSERT INTO role_permissions (role_id, permission_id) VALUES %s ON CONFLICT DO NOTHING`,
		strings.Join(valueStrings, ", "),
	)
	_, err := tx.Exec(query, valueArgs...)
	return err
}

// DeleteRole removes the role; links in user_roles and role_permissions
// cascade.
func DeleteRole(db *sql.DB, roleID string) error {
	result, err := db.Exec(`DELETE FROM roles WHERE id = $1`, roleID)
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
