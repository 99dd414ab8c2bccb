package service

import (
	"errors"
	"fmt"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Slug         string `json:"slug" validate:"required,min=1,max=100"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone string `json:"contact_phone" validate:"max=30"`
	Address      string `json:"address" validate:"max=300"`
}

// UpdateOrganizationRequest represents a partial update to an organization
type UpdateOrganizationRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:         req.Name,
		Slug:         req.Slug,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves all organizations
func (s *OrganizationService) GetAll() ([]OrganizationResponse, error) {
	orgs, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// Update applies a partial update to an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.ContactEmail != nil {
		org.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		org.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		org.Address = *req.Address
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		ContactPhone: org.ContactPhone,
		Address:      org.Address,
		CreatedAt:    org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
