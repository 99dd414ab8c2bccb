package service

import (
	"errors"
	"fmt"

	"office-management-backend/internal/auth"
	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/repository"
	"office-management-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for employee management (admin surface)
type UserService struct {
	repo      repository.UserRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		orgRepo:   orgRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create an employee account
type CreateUserRequest struct {
	Email          string          `json:"email" validate:"required,email,max=255"`
	Password       string          `json:"password" validate:"required,min=8"`
	FirstName      string          `json:"first_name" validate:"required,max=100"`
	LastName       string          `json:"last_name" validate:"required,max=100"`
	Role           models.UserRole `json:"role" validate:"required"`
	Department     string          `json:"department" validate:"max=100"`
	Title          string          `json:"title" validate:"max=100"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
}

// UpdateUserRequest represents a partial admin update to an employee account
type UpdateUserRequest struct {
	FirstName      *string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       *string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Role           *models.UserRole `json:"role,omitempty"`
	Department     *string          `json:"department,omitempty" validate:"omitempty,max=100"`
	Title          *string          `json:"title,omitempty" validate:"omitempty,max=100"`
	OrganizationID *uuid.UUID       `json:"organization_id,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
	Password       *string          `json:"password,omitempty" validate:"omitempty,min=8"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID       `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Role           models.UserRole `json:"role"`
	Department     string          `json:"department"`
	Title          string          `json:"title"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      string          `json:"created_at"`
}

// Create creates a new employee account
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Role.IsValid() {
		return nil, &apperrors.ValidationError{Field: "role", Message: "unknown role"}
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	if req.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(*req.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to check organization: %w", err)
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           req.Role,
		Department:     req.Department,
		Title:          req.Title,
		OrganizationID: req.OrganizationID,
		IsActive:       true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// List retrieves the users visible to the acting admin: all users for a
// cross-organization admin, their organization's users otherwise
func (s *UserService) List(actor *models.User) ([]UserResponse, error) {
	var (
		users []models.User
		err   error
	)
	sc := scope.Resolve(actor)
	switch {
	case sc.All:
		users, err = s.repo.GetAll()
	case sc.OrgID != nil:
		users, err = s.repo.GetByOrganizationID(*sc.OrgID)
	default:
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}
	return responses, nil
}

// Update applies a partial admin update to a user
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, &apperrors.ValidationError{Field: "role", Message: "unknown role"}
		}
		user.Role = *req.Role
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(*req.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to check organization: %w", err)
		}
		user.OrganizationID = req.OrganizationID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// Delete deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		Department:     user.Department,
		Title:          user.Title,
		OrganizationID: user.OrganizationID,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
