package service

import (
	"errors"
	"fmt"
	"time"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/repository"
	"office-management-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles business logic for task assignment and lifecycle
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to assign a task
type CreateTaskRequest struct {
	Title        string              `json:"title" validate:"required,min=1,max=200"`
	Description  string              `json:"description"`
	AssignedToID uuid.UUID           `json:"assigned_to_id" validate:"required"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	Notes        string              `json:"notes"`
}

// UpdateTaskRequest represents a partial task update. Staff assignees may only set
// Status, CompletionLevel and Notes; the remaining fields are admin-only.
type UpdateTaskRequest struct {
	Title           *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string              `json:"description,omitempty"`
	AssignedToID    *uuid.UUID           `json:"assigned_to_id,omitempty"`
	Priority        *models.TaskPriority `json:"priority,omitempty"`
	DueDate         *time.Time           `json:"due_date,omitempty"`
	Status          *models.TaskStatus   `json:"status,omitempty"`
	CompletionLevel *int                 `json:"completion_level,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes           *string              `json:"notes,omitempty"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	AssignedToID    uuid.UUID           `json:"assigned_to_id"`
	AssignedToName  string              `json:"assigned_to_name,omitempty"`
	AssignedByID    uuid.UUID           `json:"assigned_by_id"`
	AssignedByName  string              `json:"assigned_by_name,omitempty"`
	OrganizationID  *uuid.UUID          `json:"organization_id,omitempty"`
	Status          models.TaskStatus   `json:"status"`
	Priority        models.TaskPriority `json:"priority"`
	DueDate         *time.Time          `json:"due_date,omitempty"`
	CompletionLevel int                 `json:"completion_level"`
	Notes           string              `json:"notes"`
	CreatedAt       string              `json:"created_at"`
}

// Create assigns a new task; the acting admin is recorded as assigner and the task
// inherits the assignee's organization
func (s *TaskService) Create(actor *models.User, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, &apperrors.ValidationError{Field: "priority", Message: "unknown priority"}
	}

	assignee, err := s.userRepo.GetByID(req.AssignedToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up assignee: %w", err)
	}

	if !scope.Resolve(actor).CoversRecord(assignee.ID, assignee.OrganizationID) {
		return nil, apperrors.ErrScopeViolation
	}

	task := &models.Task{
		Title:          req.Title,
		Description:    req.Description,
		AssignedToID:   assignee.ID,
		AssignedByID:   actor.ID,
		OrganizationID: assignee.OrganizationID,
		Status:         models.TaskStatusPending,
		Priority:       priority,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := s.repo.GetByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return s.toResponse(created), nil
}

// List retrieves the tasks visible within the actor's scope
func (s *TaskService) List(actor *models.User) ([]TaskResponse, error) {
	tasks, err := s.repo.ListScoped(scope.Resolve(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *s.toResponse(&task)
	}
	return responses, nil
}

// GetByID retrieves a task if it falls within the actor's scope
func (s *TaskService) GetByID(actor *models.User, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.getCovered(actor, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(task), nil
}

// Update applies a partial update. Admins may change any field on any task in their
// scope; an assignee may change only status, completion level and notes on their own.
func (s *TaskService) Update(actor *models.User, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	task, err := s.getCovered(actor, id)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsPrivileged() {
		if task.AssignedToID != actor.ID {
			return nil, apperrors.ErrForbidden
		}
		if req.Title != nil || req.Description != nil || req.AssignedToID != nil || req.Priority != nil || req.DueDate != nil {
			return nil, apperrors.ErrForbidden
		}
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedToID != nil {
		assignee, err := s.userRepo.GetByID(*req.AssignedToID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to look up assignee: %w", err)
		}
		task.AssignedToID = assignee.ID
		task.OrganizationID = assignee.OrganizationID
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, &apperrors.ValidationError{Field: "priority", Message: "unknown priority"}
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != nil && *req.Status != task.Status {
		if !req.Status.IsValid() {
			return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
		}
		if !taskTransitionAllowed(task.Status, *req.Status) {
			return nil, &apperrors.StateTransitionError{Entity: "task", From: string(task.Status), To: string(*req.Status)}
		}
		task.Status = *req.Status
	}
	if req.CompletionLevel != nil {
		task.CompletionLevel = *req.CompletionLevel
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.repo.GetByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete deletes a task within the actor's scope
func (s *TaskService) Delete(actor *models.User, id uuid.UUID) error {
	if _, err := s.getCovered(actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) getCovered(actor *models.User, id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !scope.Resolve(actor).CoversRecord(task.AssignedToID, task.OrganizationID) {
		return nil, apperrors.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		AssignedToID:    task.AssignedToID,
		AssignedByID:    task.AssignedByID,
		OrganizationID:  task.OrganizationID,
		Status:          task.Status,
		Priority:        task.Priority,
		DueDate:         task.DueDate,
		CompletionLevel: task.CompletionLevel,
		Notes:           task.Notes,
		CreatedAt:       task.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if task.AssignedTo != nil {
		resp.AssignedToName = task.AssignedTo.FullName()
	}
	if task.AssignedBy != nil {
		resp.AssignedByName = task.AssignedBy.FullName()
	}
	return resp
}
