package repository

import (
	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRepository handles database operations for leave requests
type LeaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Create creates a new leave request
func (r *LeaveRepository) Create(leave *models.Leave) error {
	return r.db.Create(leave).Error
}

// GetByID retrieves a leave request by ID
func (r *LeaveRepository) GetByID(id uuid.UUID) (*models.Leave, error) {
	var leave models.Leave
	err := r.db.Preload("User").Preload("ApprovedBy").First(&leave, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// ListScoped retrieves leave requests visible within the scope, most recently created
// first. An empty status lists all statuses.
func (r *LeaveRepository) ListScoped(s scope.Scope, status models.ApprovalStatus) ([]models.Leave, error) {
	query := s.Apply(r.db, "user_id")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leaves []models.Leave
	err := query.
		Preload("User").
		Preload("ApprovedBy").
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// Update updates a leave request
func (r *LeaveRepository) Update(leave *models.Leave) error {
	return r.db.Save(leave).Error
}
