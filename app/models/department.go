package models

import "time"

type Department struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string         `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	Designations []*Designation `json:"designations,omitempty" gorm:"foreignKey:DepartmentID"`
}

// Designation belongs to a department and carries the department name
// denormalized for list payloads.
type Designation struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID   string      `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name           string      `json:"name" gorm:"not null" validate:"required"`
	DepartmentName string      `json:"department_name"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Department     *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
}
