package expenses

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
)

// GetAllExpenses returns expenses with the spender's name, department name
// and role names embedded.
func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT e.id, to_char(e.date, 'YYYY-MM-DD'), e.amount, e.description, e.user_id,
			e.department_id, e.expense_slip, e.created_at, e.updated_at,
			u.name, d.name,
			COALESCE(array_agg(r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
		FROM expenses e
		JOIN users u ON e.user_id = u.id
		JOIN departments d ON e.department_id = d.id
		LEFT JOIN user_roles ur ON u.id = ur.user_id
		LEFT JOIN roles r ON ur.role_id = r.id
		GROUP BY e.id, e.date, e.amount, e.description, e.user_id, e.department_id,
			e.expense_slip, e.created_at, e.updated_at, u.name, d.name
		ORDER BY e.date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		var description sql.NullString
		var roleNames pq.StringArray
		err := rows.Scan(
			&e.ID, &e.Date, &e.Amount, &description, &e.UserID,
			&e.DepartmentID, &e.ExpenseSlip, &e.CreatedAt, &e.UpdatedAt,
			&e.UserName, &e.DepartmentName, &roleNames,
		)
		if err != nil {
			return nil, err
		}
		e.Description = description.String
		e.UserRoles = roleNames
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (date, amount, description, user_id, department_id, expense_slip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.Date, e.Amount, e.Description, e.UserID, e.DepartmentID, e.ExpenseSlip).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
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
