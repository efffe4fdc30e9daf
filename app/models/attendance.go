package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one user's record for one calendar date. At most one row
// exists per (user_id, date); punch times are times-of-day in the
// application's local zone and TotalHoursDay accumulates worked hours as an
// exact decimal.
type Attendance struct {
	ID            string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID        string           `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date          string           `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status        AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=Present Absent"`
	PunchInTime   *string          `json:"punch_in_time,omitempty" gorm:"type:time"`
	PunchOutTime  *string          `json:"punch_out_time,omitempty" gorm:"type:time"`
	TotalHoursDay decimal.Decimal  `json:"total_hours_day" gorm:"type:numeric(8,2);default:0"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	User          *User            `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
