package service

import (
	"office-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization operations
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll() ([]OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// UserServiceInterface defines the interface for employee management operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(actor *models.User) ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// TaskServiceInterface defines the interface for task operations
type TaskServiceInterface interface {
	Create(actor *models.User, req *CreateTaskRequest) (*TaskResponse, error)
	List(actor *models.User) ([]TaskResponse, error)
	GetByID(actor *models.User, id uuid.UUID) (*TaskResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	Delete(actor *models.User, id uuid.UUID) error
}

// AttendanceServiceInterface defines the interface for attendance operations
type AttendanceServiceInterface interface {
	Mark(actor *models.User, req *MarkAttendanceRequest) (*AttendanceResponse, error)
	List(actor *models.User) ([]AttendanceResponse, error)
	Today(actor *models.User) (*AttendanceResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
}

// LeaveServiceInterface defines the interface for leave operations
type LeaveServiceInterface interface {
	Create(actor *models.User, req *CreateLeaveRequest) (*LeaveResponse, error)
	List(actor *models.User, status models.ApprovalStatus) ([]LeaveResponse, error)
	UpdateStatus(actor *models.User, id uuid.UUID, req *UpdateLeaveStatusRequest) (*LeaveResponse, error)
}

// ExpenseServiceInterface defines the interface for expense operations
type ExpenseServiceInterface interface {
	Create(actor *models.User, req *CreateExpenseRequest) (*ExpenseResponse, error)
	List(actor *models.User, status models.ApprovalStatus) ([]ExpenseResponse, error)
	UpdateStatus(actor *models.User, id uuid.UUID, req *UpdateExpenseStatusRequest) (*ExpenseResponse, error)
}

// SummaryServiceInterface defines the interface for monthly summary operations
type SummaryServiceInterface interface {
	Generate(actor *models.User, req *GenerateSummariesRequest) (*GenerateSummariesResult, error)
	List(actor *models.User) ([]SummaryResponse, error)
	GetByUser(actor *models.User, userID uuid.UUID) ([]SummaryResponse, error)
}
