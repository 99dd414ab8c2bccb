package repository

import (
	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID with assignee and assigner preloaded
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("AssignedTo").Preload("AssignedBy").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListScoped retrieves tasks visible within the scope, most recently created first
func (r *TaskRepository) ListScoped(s scope.Scope) ([]models.Task, error) {
	var tasks []models.Task
	err := s.Apply(r.db, "assigned_to_id").
		Preload("AssignedTo").
		Preload("AssignedBy").
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetByAssignee retrieves all tasks assigned to a user
func (r *TaskRepository) GetByAssignee(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("assigned_to_id = ?", userID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
