// Package permissions answers "may this user perform this action on this
// module?" as a pure existence check over the user's roles. There is no
// action hierarchy and no deny rule: a permission either exists on one of
// the user's roles or it does not.
package permissions

import "database/sql"

// Oracle is the single permission check used by services and route guards.
// It is an interface so service tests can substitute a stub.
type Oracle interface {
	Allowed(userID, action, module string) (bool, error)
}

// DBOracle resolves permission checks against the user_roles /
// role_permissions tables.
type DBOracle struct {
	DB *sql.DB
}

func NewDBOracle(db *sql.DB) *DBOracle {
	return &DBOracle{DB: db}
}

// Allowed reports whether any of the user's roles carries the exact
// (action, module) pair. Matching is case-sensitive.
func (o *DBOracle) Allowed(userID, action, module string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1
		FROM user_roles ur
		JOIN role_permissions rp ON ur.role_id = rp.role_id
		JOIN permissions p ON rp.permission_id = p.id
		WHERE ur.user_id = $1 AND p.action = $2 AND p.module = $3
	)`

	var allowed bool
	err := o.DB.QueryRow(query, userID, action, module).Scan(&allowed)
	if err != nil {
		return false, err
	}
	return allowed, nil
}
