package models

import "time"

// Expense amounts are stored as int64 minor units.
type Expense struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Date           string      `json:"date" gorm:"not null;type:date" validate:"required"`
	Amount         int64       `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Description    string      `json:"description" gorm:"type:varchar(200)" validate:"max=200"`
	UserID         string      `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	DepartmentID   string      `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExpenseSlip    *string     `json:"expense_slip,omitempty"`
	UserName       string      `json:"user_name,omitempty" gorm:"-"`
	DepartmentName string      `json:"department_name,omitempty" gorm:"-"`
	UserRoles      []string    `json:"user_roles,omitempty" gorm:"-"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	User           *User       `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Department     *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
}
