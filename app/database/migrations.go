package database

import (
	"database/sql"
	"fmt"
	"log"
)

// PermissionModules are the permission namespaces known to the system.
// Grants always reference one of these with one of PermissionActions.
var PermissionModules = []string{
	"user",
	"role",
	"department",
	"designation",
	"attendance",
	"leave",
	"project_management",
	"task_management",
	"finance_management",
}

// PermissionActions are the grantable actions within a module.
var PermissionActions = []string{
	"create",
	"read",
	"view",
	"view_all",
	"update",
	"delete",
}

// RunMigrations creates the schema if it does not exist and seeds the
// permission catalogue. Every statement is idempotent so this runs on every
// startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS designations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			department_name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			user_name VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			age INTEGER,
			address TEXT,
			cnic_no BIGINT,
			department_id UUID REFERENCES departments(id) ON DELETE SET NULL,
			designation_id UUID REFERENCES designations(id) ON DELETE SET NULL,
			joining_date DATE,
			profile_pic TEXT,
			monthly_leave_balance INTEGER NOT NULL DEFAULT 2 CHECK (monthly_leave_balance >= 0),
			yearly_leave_balance INTEGER NOT NULL DEFAULT 24 CHECK (yearly_leave_balance >= 0),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS permissions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			action VARCHAR(50) NOT NULL,
			module VARCHAR(100) NOT NULL,
			UNIQUE (action, module)
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			UNIQUE (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS role_permissions (
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			permission_id UUID NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
			UNIQUE (role_id, permission_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'Present',
			punch_in_time TIME,
			punch_out_time TIME,
			total_hours_day NUMERIC(8,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (user_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS leaves (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			leave_type VARCHAR(20) NOT NULL,
			leave_from DATE NOT NULL,
			leave_to DATE NOT NULL,
			leave_date DATE,
			leave_days INTEGER NOT NULL,
			reason TEXT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'Pending',
			approved_by TEXT,
			approved_date DATE,
			approved_time TIME,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			amount BIGINT NOT NULL,
			description VARCHAR(200),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			department_id UUID NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
			expense_slip TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			deadline DATE NOT NULL,
			leader_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			total_tasks INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS project_members (
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE (project_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			assigned_to UUID REFERENCES users(id) ON DELETE SET NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			priority VARCHAR(10) NOT NULL DEFAULT 'Medium',
			due_date DATE,
			updated_by UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_attendances_user_date ON attendances(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_attendances_date ON attendances(date)`,
		`CREATE INDEX IF NOT EXISTS idx_leaves_user_id ON leaves(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_leaves_status ON leaves(status)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks(assigned_to)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
		}
	}

	if err := seedPermissions(db); err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

// seedPermissions inserts the full action x module catalogue. Existing rows
// are left untouched.
func seedPermissions(db *sql.DB) error {
	for _, module := range PermissionModules {
		for _, action := range PermissionActions {
			_, err := db.Exec(
				`INSERT INTO permissions (action, module) VALUES ($1, $2) ON CONFLICT (action, module) DO NOTHING`,
				action, module,
			)
			if err != nil {
				return fmt.Errorf("failed to seed permission %s/%s: %v", action, module, err)
			}
		}
	}
	return nil
}
