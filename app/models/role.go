package models

import "time"

type Role struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string        `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	Permissions []*Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions;"`
}

// Permission is one grantable (action, module) pair. Matching is exact and
// case-sensitive; there is no action hierarchy or deny rule.
type Permission struct {
	ID     string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Action string `json:"action" gorm:"not null;uniqueIndex:idx_action_module" validate:"required"`
	Module string `json:"module" gorm:"not null;uniqueIndex:idx_action_module" validate:"required"`
}

type UserRole struct {
	UserID string `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RoleID string `json:"role_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
}

type RolePermission struct {
	RoleID       string `json:"role_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PermissionID string `json:"permission_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
}
