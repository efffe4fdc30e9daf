package models

import "time"

type User struct {
	ID                  string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name                string       `json:"name" gorm:"not null" validate:"required"`
	Email               string       `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	UserName            string       `json:"user_name" gorm:"uniqueIndex;not null" validate:"required"`
	Password            string       `json:"-" gorm:"not null" validate:"required,min=8"`
	Age                 int          `json:"age" validate:"gte=0"`
	Address             string       `json:"address"`
	CnicNo              int64        `json:"cnic_no"`
	DepartmentID        *string      `json:"department_id,omitempty" gorm:"index;type:uuid"`
	DesignationID       *string      `json:"designation_id,omitempty" gorm:"index;type:uuid"`
	JoiningDate         string       `json:"joining_date" gorm:"type:date"`
	ProfilePic          *string      `json:"profile_pic,omitempty"`
	MonthlyLeaveBalance int          `json:"monthly_leave_balance" gorm:"default:2" validate:"gte=0"`
	YearlyLeaveBalance  int          `json:"yearly_leave_balance" gorm:"default:24" validate:"gte=0"`
	IsActive            bool         `json:"is_active" gorm:"default:true"`
	CreatedAt           time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Department          *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	Designation         *Designation `json:"designation,omitempty" gorm:"foreignKey:DesignationID;references:ID"`
	Roles               []*Role      `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}
