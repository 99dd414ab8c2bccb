package repository

import (
	"time"

	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expense claims
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense claim
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// GetByID retrieves an expense claim by ID
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.Preload("User").Preload("ApprovedBy").First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListScoped retrieves expense claims visible within the scope, most recently created
// first. An empty status lists all statuses.
func (r *ExpenseRepository) ListScoped(s scope.Scope, status models.ApprovalStatus) ([]models.Expense, error) {
	query := s.Apply(r.db, "user_id")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var expenses []models.Expense
	err := query.
		Preload("User").
		Preload("ApprovedBy").
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// SumApprovedCentsInRange sums a user's approved expense amounts with dates in [start, end]
func (r *ExpenseRepository) SumApprovedCentsInRange(userID uuid.UUID, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Expense{}).
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
			userID, models.ApprovalStatusApproved, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Update updates an expense claim
func (r *ExpenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}
