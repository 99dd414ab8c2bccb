package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance represents one user's presence record for a single date
type Attendance struct {
	BaseModel
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index:idx_attendance_user_date"`
	Date           time.Time        `json:"date" gorm:"type:date;not null;index:idx_attendance_user_date"`
	Status         AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'present'"`
	CheckInTime    *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time       `json:"check_out_time,omitempty"`
	WorkHours      float64          `json:"work_hours" gorm:"not null;default:0"`
	OrganizationID *uuid.UUID       `json:"organization_id,omitempty" gorm:"type:uuid;index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendance"
}
