package models

import (
	"github.com/google/uuid"
)

// MonthlySummary is a precomputed per-user aggregate for one calendar month.
// One row per (user, month, year); written only by the summary generator.
type MonthlySummary struct {
	BaseModel
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_summaries_user_month_year"`
	Month              int        `json:"month" gorm:"not null;uniqueIndex:idx_summaries_user_month_year" validate:"gte=1,lte=12"`
	Year               int        `json:"year" gorm:"not null;uniqueIndex:idx_summaries_user_month_year" validate:"gte=2000"`
	TotalTasks         int        `json:"total_tasks" gorm:"not null;default:0"`
	CompletedTasks     int        `json:"completed_tasks" gorm:"not null;default:0"`
	InProgressTasks    int        `json:"in_progress_tasks" gorm:"not null;default:0"`
	PendingTasks       int        `json:"pending_tasks" gorm:"not null;default:0"`
	AttendanceDays     int        `json:"attendance_days" gorm:"not null;default:0"`
	LeaveDays          int        `json:"leave_days" gorm:"not null;default:0"`
	TotalExpensesCents int64      `json:"total_expenses_cents" gorm:"not null;default:0"`
	OrganizationID     *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for MonthlySummary
func (MonthlySummary) TableName() string {
	return "monthly_summaries"
}
