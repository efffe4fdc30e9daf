package models

import "time"

// Leave is a leave request. LeaveDays is the inclusive day count between
// LeaveFrom and LeaveTo; balances are deducted only when the request is
// approved, never at apply time.
type Leave struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID       string      `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UserName     string      `json:"user_name,omitempty" gorm:"-"`
	LeaveType    LeaveType   `json:"leave_type" gorm:"not null" validate:"required,oneof=Sick Maternity Paternity Other"`
	LeaveFrom    string      `json:"leave_from" gorm:"not null;type:date" validate:"required"`
	LeaveTo      string      `json:"leave_to" gorm:"not null;type:date" validate:"required"`
	LeaveDate    string      `json:"leave_date" gorm:"type:date"`
	LeaveDays    int         `json:"leave_days" gorm:"not null" validate:"gte=1"`
	Reason       string      `json:"reason" gorm:"not null" validate:"required"`
	Status       LeaveStatus `json:"status" gorm:"not null;default:Pending"`
	ApprovedBy   *string     `json:"approved_by,omitempty"`
	ApprovedDate *string     `json:"approved_date,omitempty" gorm:"type:date"`
	ApprovedTime *string     `json:"approved_time,omitempty" gorm:"type:time"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}
