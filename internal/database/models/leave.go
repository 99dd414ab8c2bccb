package models

import (
	"time"

	"github.com/google/uuid"
)

// Leave represents a leave request subject to the approval workflow
type Leave struct {
	BaseModel
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Type           LeaveType      `json:"type" gorm:"type:varchar(20);not null"`
	StartDate      time.Time      `json:"start_date" gorm:"type:date;not null"`
	EndDate        time.Time      `json:"end_date" gorm:"type:date;not null"`
	Days           int            `json:"days" gorm:"not null" validate:"gte=1"`
	Reason         string         `json:"reason" gorm:"type:text;not null"`
	Status         ApprovalStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedByID   *uuid.UUID     `json:"approved_by_id,omitempty" gorm:"type:uuid"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	OrganizationID *uuid.UUID     `json:"organization_id,omitempty" gorm:"type:uuid;index"`

	User       *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ApprovedBy *User `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
}

// TableName returns the table name for Leave
func (Leave) TableName() string {
	return "leaves"
}
