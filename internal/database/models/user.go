package models

import (
	"github.com/google/uuid"
)

// User represents an account that can log in and own records
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string     `json:"-" gorm:"not null;size:100"`
	FirstName      string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'staff'" validate:"required"`
	Department     string     `json:"department" gorm:"size:100"`
	Title          string     `json:"title" gorm:"size:100"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name for enriched responses
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
