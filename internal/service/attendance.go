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

// AttendanceService handles business logic for attendance records
type AttendanceService struct {
	repo      repository.AttendanceRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo repository.AttendanceRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// MarkAttendanceRequest represents the request to mark attendance for a date.
// UserID is optional: staff mark themselves, admins may mark any user in scope.
type MarkAttendanceRequest struct {
	UserID       *uuid.UUID              `json:"user_id,omitempty"`
	Date         string                  `json:"date" validate:"required"`
	Status       models.AttendanceStatus `json:"status" validate:"required"`
	CheckInTime  *time.Time              `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time              `json:"check_out_time,omitempty"`
	WorkHours    float64                 `json:"work_hours" validate:"gte=0,lte=24"`
}

// UpdateAttendanceRequest represents a partial admin update to an attendance record
type UpdateAttendanceRequest struct {
	Status       *models.AttendanceStatus `json:"status,omitempty"`
	CheckInTime  *time.Time               `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time               `json:"check_out_time,omitempty"`
	WorkHours    *float64                 `json:"work_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
}

// AttendanceResponse represents the response for attendance operations
type AttendanceResponse struct {
	ID             uuid.UUID               `json:"id"`
	UserID         uuid.UUID               `json:"user_id"`
	UserName       string                  `json:"user_name,omitempty"`
	Date           string                  `json:"date"`
	Status         models.AttendanceStatus `json:"status"`
	CheckInTime    *time.Time              `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time              `json:"check_out_time,omitempty"`
	WorkHours      float64                 `json:"work_hours"`
	OrganizationID *uuid.UUID              `json:"organization_id,omitempty"`
}

// Mark creates an attendance record for a date. One record per user per date: a
// second mark for the same date fails with AlreadyExists.
func (s *AttendanceService) Mark(actor *models.User, req *MarkAttendanceRequest) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	subject := actor
	if req.UserID != nil && *req.UserID != actor.ID {
		if !actor.Role.IsPrivileged() {
			return nil, apperrors.ErrForbidden
		}
		subject, err = s.userRepo.GetByID(*req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if !scope.Resolve(actor).CoversRecord(subject.ID, subject.OrganizationID) {
			return nil, apperrors.ErrScopeViolation
		}
	}

	existing, err := s.repo.GetByUserAndDate(subject.ID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAttendanceExists
	}

	record := &models.Attendance{
		UserID:         subject.ID,
		Date:           date,
		Status:         req.Status,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		WorkHours:      req.WorkHours,
		OrganizationID: subject.OrganizationID,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.toResponse(record), nil
}

// List retrieves the attendance records visible within the actor's scope
func (s *AttendanceService) List(actor *models.User) ([]AttendanceResponse, error) {
	records, err := s.repo.ListScoped(scope.Resolve(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]AttendanceResponse, len(records))
	for i, record := range records {
		responses[i] = *s.toResponse(&record)
	}
	return responses, nil
}

// Today retrieves the caller's attendance record for today, or nil when absent
func (s *AttendanceService) Today(actor *models.User) (*AttendanceResponse, error) {
	record, err := s.repo.GetByUserAndDate(actor.ID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return s.toResponse(record), nil
}

// Update applies a partial admin update to an attendance record within scope
func (s *AttendanceService) Update(actor *models.User, id uuid.UUID, req *UpdateAttendanceRequest) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if !scope.Resolve(actor).CoversRecord(record.UserID, record.OrganizationID) {
		return nil, apperrors.ErrScopeViolation
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, &apperrors.ValidationError{Field: "status", Message: "unknown status"}
		}
		record.Status = *req.Status
	}
	if req.CheckInTime != nil {
		record.CheckInTime = req.CheckInTime
	}
	if req.CheckOutTime != nil {
		record.CheckOutTime = req.CheckOutTime
	}
	if req.WorkHours != nil {
		record.WorkHours = *req.WorkHours
	}

	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.toResponse(record), nil
}

func (s *AttendanceService) toResponse(record *models.Attendance) *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:             record.ID,
		UserID:         record.UserID,
		Date:           record.Date.Format(dateLayout),
		Status:         record.Status,
		CheckInTime:    record.CheckInTime,
		CheckOutTime:   record.CheckOutTime,
		WorkHours:      record.WorkHours,
		OrganizationID: record.OrganizationID,
	}
	if record.User != nil {
		resp.UserName = record.User.FullName()
	}
	return resp
}
