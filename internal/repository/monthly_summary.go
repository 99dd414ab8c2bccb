package repository

import (
	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlySummaryRepository handles database operations for monthly summaries
type MonthlySummaryRepository struct {
	db *gorm.DB
}

// NewMonthlySummaryRepository creates a new monthly summary repository
func NewMonthlySummaryRepository(db *gorm.DB) *MonthlySummaryRepository {
	return &MonthlySummaryRepository{db: db}
}

// ListScoped retrieves summaries visible within the scope, newest month first
func (r *MonthlySummaryRepository) ListScoped(s scope.Scope) ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary
	err := s.Apply(r.db, "user_id").
		Preload("User").
		Order("year DESC, month DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetByUser retrieves all summaries for a user, newest month first
func (r *MonthlySummaryRepository) GetByUser(userID uuid.UUID) ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary
	err := r.db.Where("user_id = ?", userID).Order("year DESC, month DESC").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetByUserMonthYear retrieves the single summary row for (user, month, year)
func (r *MonthlySummaryRepository) GetByUserMonthYear(userID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	var summary models.MonthlySummary
	err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Upsert atomically inserts or replaces the summary row for (user, month, year).
// The ON CONFLICT target matches the composite unique index, so concurrent
// generator runs for the same month cannot produce duplicate rows.
func (r *MonthlySummaryRepository) Upsert(summary *models.MonthlySummary) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_tasks", "completed_tasks", "in_progress_tasks", "pending_tasks",
			"attendance_days", "leave_days", "total_expenses_cents",
			"organization_id", "updated_at",
		}),
	}).Create(summary).Error
}
