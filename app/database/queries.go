package database

import (
	"database/sql"
	"fmt"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

const userColumns = `u.id, u.name, u.email, u.user_name, u.password, u.age, u.address, u.cnic_no,
	u.department_id, u.designation_id, to_char(u.joining_date, 'YYYY-MM-DD'), u.profile_pic,
	u.monthly_leave_balance, u.yearly_leave_balance, u.is_active, u.created_at, u.updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	u := &models.User{}
	var age sql.NullInt64
	var address sql.NullString
	var cnic sql.NullInt64
	var joiningDate sql.NullString
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.UserName, &u.Password, &age, &address, &cnic,
		&u.DepartmentID, &u.DesignationID, &joiningDate, &u.ProfilePic,
		&u.MonthlyLeaveBalance, &u.YearlyLeaveBalance, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Age = int(age.Int64)
	u.Address = address.String
	u.CnicNo = cnic.Int64
	u.JoiningDate = joiningDate.String
	return u, nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1 AND u.is_active = true`
	return scanUser(db.QueryRow(query, email))
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1 AND u.is_active = true`
	user, err := scanUser(db.QueryRow(query, id))
	if err != nil {
		return nil, err
	}

	if user.DepartmentID != nil {
		dept := &models.Department{}
		err := db.QueryRow(`SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`, *user.DepartmentID).
			Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
		if err == nil {
			user.Department = dept
		}
	}

	if user.DesignationID != nil {
		desig := &models.Designation{}
		err := db.QueryRow(`SELECT id, department_id, name, department_name, created_at, updated_at FROM designations WHERE id = $1`, *user.DesignationID).
			Scan(&desig.ID, &desig.DepartmentID, &desig.Name, &desig.DepartmentName, &desig.CreatedAt, &desig.UpdatedAt)
		if err == nil {
			user.Designation = desig
		}
	}

	roles, err := GetUserRoles(db, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT ` + userColumns + `,
		d.name, des.name
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		LEFT JOIN designations des ON u.designation_id = des.id
		WHERE u.is_active = true
		ORDER BY u.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		var age sql.NullInt64
		var address sql.NullString
		var cnic sql.NullInt64
		var joiningDate, deptName, desigName sql.NullString
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.UserName, &u.Password, &age, &address, &cnic,
			&u.DepartmentID, &u.DesignationID, &joiningDate, &u.ProfilePic,
			&u.MonthlyLeaveBalance, &u.YearlyLeaveBalance, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
			&deptName, &desigName,
		)
		if err != nil {
			continue
		}
		u.Age = int(age.Int64)
		u.Address = address.String
		u.CnicNo = cnic.Int64
		u.JoiningDate = joiningDate.String
		if u.DepartmentID != nil && deptName.Valid {
			u.Department = &models.Department{ID: *u.DepartmentID, Name: deptName.String}
		}
		if u.DesignationID != nil && desigName.Valid {
			u.Designation = &models.Designation{ID: *u.DesignationID, Name: desigName.String}
		}
		users = append(users, u)
	}
	return users, nil
}

// CreateUser inserts the user and the role assignment in one transaction.
func CreateUser(db *sql.DB, user *models.User, roleID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (name, email, user_name, password, age, address, cnic_no,
			department_id, designation_id, joining_date, profile_pic, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, monthly_leave_balance, yearly_leave_balance, created_at, updated_at`

	err = tx.QueryRow(query,
		user.Name, user.Email, user.UserName, user.Password, user.Age, user.Address, user.CnicNo,
		user.DepartmentID, user.DesignationID, user.JoiningDate, user.ProfilePic,
	).Scan(&user.ID, &user.MonthlyLeaveBalance, &user.YearlyLeaveBalance, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, user.ID, roleID); err != nil {
		return err
	}

	return tx.Commit()
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	result, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func DeleteUser(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
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

// EmailTaken reports whether another user already owns this email.
// excludeID may be empty for create checks.
func EmailTaken(db *sql.DB, email, excludeID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id::text <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func UserNameTaken(db *sql.DB, userName, excludeID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE user_name = $1 AND id::text <> $2)`,
		userName, excludeID,
	).Scan(&exists)
	return exists, err
}

func UserExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active = true)`, id).Scan(&exists)
	return exists, err
}

func GetUserName(db *sql.DB, id string) (string, error) {
	var name string
	err := db.QueryRow(`SELECT name FROM users WHERE id = $1`, id).Scan(&name)
	return name, err
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.created_at, r.updated_at
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		r := &models.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
			continue
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// GetUserPermissions returns the distinct (action, module) pairs reachable
// through the user's roles.
func GetUserPermissions(db *sql.DB, userID string) ([]*models.Permission, error) {
	query := `SELECT DISTINCT p.id, p.action, p.module
		FROM permissions p
		JOIN role_permissions rp ON p.id = rp.permission_id
		JOIN user_roles ur ON rp.role_id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY p.module, p.action`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := []*models.Permission{}
	for rows.Next() {
		p := &models.Permission{}
		if err := rows.Scan(&p.ID, &p.Action, &p.Module); err != nil {
			continue
		}
		permissions = append(permissions, p)
	}
	return permissions, nil
}

const leaveColumns = `l.id, l.user_id, l.leave_type, to_char(l.leave_from, 'YYYY-MM-DD'),
	to_char(l.leave_to, 'YYYY-MM-DD'), to_char(l.leave_date, 'YYYY-MM-DD'), l.leave_days,
	l.reason, l.status, l.approved_by, to_char(l.approved_date, 'YYYY-MM-DD'),
	l.approved_time::text, l.created_at, l.updated_at`

func scanLeaveRows(rows *sql.Rows, withUserName bool) ([]*models.Leave, error) {
	leaves := []*models.Leave{}
	for rows.Next() {
		l := &models.Leave{}
		var leaveDate sql.NullString
		dest := []interface{}{
			&l.ID, &l.UserID, &l.LeaveType, &l.LeaveFrom, &l.LeaveTo, &leaveDate, &l.LeaveDays,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedDate, &l.ApprovedTime,
			&l.CreatedAt, &l.UpdatedAt,
		}
		if withUserName {
			dest = append(dest, &l.UserName)
		}
		if err := rows.Scan(dest...); err != nil {
			continue
		}
		l.LeaveDate = leaveDate.String
		leaves = append(leaves, l)
	}
	return leaves, nil
}

// GetLeavesByUser returns the user's leave requests, newest first.
func GetLeavesByUser(db *sql.DB, userID string) ([]*models.Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves l WHERE l.user_id = $1 ORDER BY l.created_at DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRows(rows, false)
}

// GetAllLeaves returns every leave request with the requester's name.
func GetAllLeaves(db *sql.DB) ([]*models.Leave, error) {
	query := `SELECT ` + leaveColumns + `, u.name
		FROM leaves l
		JOIN users u ON l.user_id = u.id
		ORDER BY l.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRows(rows, true)
}

// GetUserProjects returns the projects a user leads or belongs to, in the
// light shape embedded in the login payload.
func GetUserProjects(db *sql.DB, userID string) ([]map[string]interface{}, error) {
	query := `SELECT DISTINCT p.id, p.name, to_char(p.deadline, 'YYYY-MM-DD'), p.leader_id
		FROM projects p
		LEFT JOIN project_members pm ON p.id = pm.project_id
		WHERE p.leader_id = $1 OR pm.user_id = $1
		ORDER BY p.name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []map[string]interface{}{}
	for rows.Next() {
		var id, name, deadline, leaderID string
		if err := rows.Scan(&id, &name, &deadline, &leaderID); err != nil {
			continue
		}
		projects = append(projects, map[string]interface{}{
			"id":        id,
			"name":      name,
			"deadline":  deadline,
			"is_leader": leaderID == userID,
		})
	}
	return projects, nil
}
