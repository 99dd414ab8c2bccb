package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Expense represents an expense claim subject to the approval workflow.
// Amounts are stored as integer cents to keep aggregation exact.
type Expense struct {
	BaseModel
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	AmountCents    int64          `json:"amount_cents" gorm:"not null" validate:"gt=0"`
	Description    string         `json:"description" gorm:"type:text;not null"`
	Date           time.Time      `json:"date" gorm:"type:date;not null"`
	Category       string         `json:"category" gorm:"not null;size:100"`
	Status         ApprovalStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ReceiptURL     string         `json:"receipt_url" gorm:"size:500"`
	ApprovedByID   *uuid.UUID     `json:"approved_by_id,omitempty" gorm:"type:uuid"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	OrganizationID *uuid.UUID     `json:"organization_id,omitempty" gorm:"type:uuid;index"`

	User       *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ApprovedBy *User `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// FormatCents renders integer cents as a fixed two-decimal string, e.g. 15000 -> "150.00"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
