package models

import "time"

type Project struct {
	ID          string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string           `json:"name" gorm:"not null" validate:"required"`
	Description string           `json:"description"`
	Deadline    string           `json:"deadline" gorm:"not null;type:date" validate:"required"`
	LeaderID    string           `json:"leader_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TotalTasks  int              `json:"total_tasks" gorm:"default:0"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Leader      *ProjectMember   `json:"leader,omitempty" gorm:"-"`
	TeamMembers []*ProjectMember `json:"team_members,omitempty" gorm:"many2many:project_members;"`
}

// ProjectMember is the light user shape embedded in project payloads.
type ProjectMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
