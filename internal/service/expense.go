package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/repository"
	"office-management-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseService handles business logic for expense claims and their approval
type ExpenseService struct {
	repo      repository.ExpenseRepositoryInterface
	validator *validator.Validate
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo repository.ExpenseRepositoryInterface, validator *validator.Validate) *ExpenseService {
	return &ExpenseService{
		repo:      repo,
		validator: validator,
	}
}

// CreateExpenseRequest represents the request to submit an expense claim.
// Amount is a decimal string such as "150.00".
type CreateExpenseRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Category    string `json:"category" validate:"required,max=100"`
	ReceiptURL  string `json:"receipt_url" validate:"omitempty,url,max=500"`
}

// UpdateExpenseStatusRequest represents the approval decision
type UpdateExpenseStatusRequest struct {
	Status models.ApprovalStatus `json:"status" validate:"required"`
}

// ExpenseResponse represents the response for expense operations
type ExpenseResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"user_id"`
	UserName       string                `json:"user_name,omitempty"`
	Amount         string                `json:"amount"`
	Description    string                `json:"description"`
	Date           string                `json:"date"`
	Category       string                `json:"category"`
	Status         models.ApprovalStatus `json:"status"`
	ReceiptURL     string                `json:"receipt_url,omitempty"`
	ApprovedByID   *uuid.UUID            `json:"approved_by_id,omitempty"`
	ApprovedByName string                `json:"approved_by_name,omitempty"`
	ApprovedAt     *time.Time            `json:"approved_at,omitempty"`
	OrganizationID *uuid.UUID            `json:"organization_id,omitempty"`
	CreatedAt      string                `json:"created_at"`
}

// parseAmount converts a decimal string like "150.00" to integer cents
func parseAmount(value string) (int64, error) {
	invalid := &apperrors.ValidationError{Field: "amount", Message: "must be a positive decimal amount"}

	trimmed := strings.TrimSpace(value)
	// ParseInt accepts "-0", so a sign check has to come first
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "+") {
		return 0, invalid
	}

	whole, frac, hasFrac := strings.Cut(trimmed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, invalid
	}

	var cents int64
	if hasFrac {
		if len(frac) > 2 {
			return 0, invalid
		}
		frac = frac + strings.Repeat("0", 2-len(frac))
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, invalid
		}
	}

	total := units*100 + cents
	if total <= 0 {
		return 0, invalid
	}
	return total, nil
}

// Create submits a new pending expense claim for the acting user
func (s *ExpenseService) Create(actor *models.User, req *CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	cents, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:         actor.ID,
		AmountCents:    cents,
		Description:    req.Description,
		Date:           date,
		Category:       req.Category,
		Status:         models.ApprovalStatusPending,
		ReceiptURL:     req.ReceiptURL,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return s.toResponse(expense), nil
}

// List retrieves the expense claims visible within the actor's scope, optionally
// filtered by status
func (s *ExpenseService) List(actor *models.User, status models.ApprovalStatus) ([]ExpenseResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}

	expenses, err := s.repo.ListScoped(scope.Resolve(actor), status)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = *s.toResponse(&expense)
	}
	return responses, nil
}

// UpdateStatus applies an approval decision with the same guards as leave approval
func (s *ExpenseService) UpdateStatus(actor *models.User, id uuid.UUID, req *UpdateExpenseStatusRequest) (*ExpenseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}
	if !actor.Role.IsPrivileged() {
		return nil, apperrors.ErrForbidden
	}

	expense, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if !scope.Resolve(actor).CoversRecord(expense.UserID, expense.OrganizationID) {
		return nil, apperrors.ErrScopeViolation
	}

	if !approvalTransitionAllowed(expense.Status, req.Status) {
		return nil, &apperrors.StateTransitionError{Entity: "expense", From: string(expense.Status), To: string(req.Status)}
	}

	now := time.Now()
	approverID := actor.ID
	expense.Status = req.Status
	expense.ApprovedByID = &approverID
	expense.ApprovedAt = &now

	if err := s.repo.Update(expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	updated, err := s.repo.GetByID(expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expense: %w", err)
	}
	return s.toResponse(updated), nil
}

func (s *ExpenseService) toResponse(expense *models.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:             expense.ID,
		UserID:         expense.UserID,
		Amount:         models.FormatCents(expense.AmountCents),
		Description:    expense.Description,
		Date:           expense.Date.Format(dateLayout),
		Category:       expense.Category,
		Status:         expense.Status,
		ReceiptURL:     expense.ReceiptURL,
		ApprovedByID:   expense.ApprovedByID,
		ApprovedAt:     expense.ApprovedAt,
		OrganizationID: expense.OrganizationID,
		CreatedAt:      expense.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if expense.User != nil {
		resp.UserName = expense.User.FullName()
	}
	if expense.ApprovedBy != nil {
		resp.ApprovedByName = expense.ApprovedBy.FullName()
	}
	return resp
}
