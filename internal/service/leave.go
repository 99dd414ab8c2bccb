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

// LeaveService handles business logic for leave requests and their approval
type LeaveService struct {
	repo      repository.LeaveRepositoryInterface
	validator *validator.Validate
}

// NewLeaveService creates a new leave service
func NewLeaveService(repo repository.LeaveRepositoryInterface, validator *validator.Validate) *LeaveService {
	return &LeaveService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLeaveRequest represents the request to submit a leave request
type CreateLeaveRequest struct {
	Type      models.LeaveType `json:"type" validate:"required"`
	StartDate string           `json:"start_date" validate:"required"`
	EndDate   string           `json:"end_date" validate:"required"`
	Days      int              `json:"days" validate:"required,gte=1"`
	Reason    string           `json:"reason" validate:"required"`
}

// UpdateLeaveStatusRequest represents the approval decision
type UpdateLeaveStatusRequest struct {
	Status models.ApprovalStatus `json:"status" validate:"required"`
}

// LeaveResponse represents the response for leave operations
type LeaveResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"user_id"`
	UserName       string                `json:"user_name,omitempty"`
	Type           models.LeaveType      `json:"type"`
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	Days           int                   `json:"days"`
	Reason         string                `json:"reason"`
	Status         models.ApprovalStatus `json:"status"`
	ApprovedByID   *uuid.UUID            `json:"approved_by_id,omitempty"`
	ApprovedByName string                `json:"approved_by_name,omitempty"`
	ApprovedAt     *time.Time            `json:"approved_at,omitempty"`
	OrganizationID *uuid.UUID            `json:"organization_id,omitempty"`
	CreatedAt      string                `json:"created_at"`
}

// Create submits a new pending leave request for the acting user
func (s *LeaveService) Create(actor *models.User, req *CreateLeaveRequest) (*LeaveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Type.IsValid() {
		return nil, &apperrors.ValidationError{Field: "type", Message: "unknown leave type"}
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &apperrors.ValidationError{Field: "end_date", Message: "must not be before start_date"}
	}

	leave := &models.Leave{
		UserID:         actor.ID,
		Type:           req.Type,
		StartDate:      start,
		EndDate:        end,
		Days:           req.Days,
		Reason:         req.Reason,
		Status:         models.ApprovalStatusPending,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.Create(leave); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.toResponse(leave), nil
}

// List retrieves the leave requests visible within the actor's scope, optionally
// filtered by status
func (s *LeaveService) List(actor *models.User, status models.ApprovalStatus) ([]LeaveResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}

	leaves, err := s.repo.ListScoped(scope.Resolve(actor), status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]LeaveResponse, len(leaves))
	for i, leave := range leaves {
		responses[i] = *s.toResponse(&leave)
	}
	return responses, nil
}

// UpdateStatus applies an approval decision. Only admins and proprietors may decide,
// the record must fall within the approver's organization scope, and terminal
// records accept no further decisions.
func (s *LeaveService) UpdateStatus(actor *models.User, id uuid.UUID, req *UpdateLeaveStatusRequest) (*LeaveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}
	if !actor.Role.IsPrivileged() {
		return nil, apperrors.ErrForbidden
	}

	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !scope.Resolve(actor).CoversRecord(leave.UserID, leave.OrganizationID) {
		return nil, apperrors.ErrScopeViolation
	}

	if !approvalTransitionAllowed(leave.Status, req.Status) {
		return nil, &apperrors.StateTransitionError{Entity: "leave", From: string(leave.Status), To: string(req.Status)}
	}

	now := time.Now()
	approverID := actor.ID
	leave.Status = req.Status
	leave.ApprovedByID = &approverID
	leave.ApprovedAt = &now

	if err := s.repo.Update(leave); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	updated, err := s.repo.GetByID(leave.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload leave request: %w", err)
	}
	return s.toResponse(updated), nil
}

func (s *LeaveService) toResponse(leave *models.Leave) *LeaveResponse {
	resp := &LeaveResponse{
		ID:             leave.ID,
		UserID:         leave.UserID,
		Type:           leave.Type,
		StartDate:      leave.StartDate.Format(dateLayout),
		EndDate:        leave.EndDate.Format(dateLayout),
		Days:           leave.Days,
		Reason:         leave.Reason,
		Status:         leave.Status,
		ApprovedByID:   leave.ApprovedByID,
		ApprovedAt:     leave.ApprovedAt,
		OrganizationID: leave.OrganizationID,
		CreatedAt:      leave.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if leave.User != nil {
		resp.UserName = leave.User.FullName()
	}
	if leave.ApprovedBy != nil {
		resp.ApprovedByName = leave.ApprovedBy.FullName()
	}
	return resp
}
