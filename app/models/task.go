package models

import "time"

type Task struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ProjectID    string       `json:"project_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string       `json:"name" gorm:"not null" validate:"required"`
	Description  string       `json:"description"`
	AssignedTo   *string      `json:"assigned_to,omitempty" gorm:"index;type:uuid"`
	Status       TaskStatus   `json:"status" gorm:"not null;default:Pending" validate:"oneof=Pending 'In Progress' Completed"`
	Priority     TaskPriority `json:"priority" gorm:"not null;default:Medium" validate:"oneof=Low Medium High"`
	DueDate      *string      `json:"due_date,omitempty" gorm:"type:date"`
	UpdatedBy    *string      `json:"updated_by,omitempty" gorm:"type:uuid"`
	ProjectName  string       `json:"project_name,omitempty" gorm:"-"`
	AssigneeName *string      `json:"assignee_name,omitempty" gorm:"-"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}
