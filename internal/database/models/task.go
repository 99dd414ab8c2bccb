package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work assigned by an admin to a user
type Task struct {
	BaseModel
	Title           string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description     string       `json:"description" gorm:"type:text"`
	AssignedToID    uuid.UUID    `json:"assigned_to_id" gorm:"type:uuid;not null;index"`
	AssignedByID    uuid.UUID    `json:"assigned_by_id" gorm:"type:uuid;not null"`
	OrganizationID  *uuid.UUID   `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Status          TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Priority        TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	DueDate         *time.Time   `json:"due_date,omitempty"`
	CompletionLevel int          `json:"completion_level" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	Notes           string       `json:"notes" gorm:"type:text"`

	AssignedTo *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	AssignedBy *User `json:"assigned_by,omitempty" gorm:"foreignKey:AssignedByID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
