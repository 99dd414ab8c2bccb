package repository

import (
	"time"

	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.User, error)
	Count() (int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAll() ([]models.Organization, error)
	Update(org *models.Organization) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	ListScoped(s scope.Scope) ([]models.Task, error)
	GetByAssignee(userID uuid.UUID) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

// AttendanceRepositoryInterface defines the interface for attendance repository operations
type AttendanceRepositoryInterface interface {
	Create(record *models.Attendance) error
	GetByID(id uuid.UUID) (*models.Attendance, error)
	ListScoped(s scope.Scope) ([]models.Attendance, error)
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error)
	GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Attendance, error)
	Update(record *models.Attendance) error
}

// LeaveRepositoryInterface defines the interface for leave repository operations
type LeaveRepositoryInterface interface {
	Create(leave *models.Leave) error
	GetByID(id uuid.UUID) (*models.Leave, error)
	ListScoped(s scope.Scope, status models.ApprovalStatus) ([]models.Leave, error)
	Update(leave *models.Leave) error
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	ListScoped(s scope.Scope, status models.ApprovalStatus) ([]models.Expense, error)
	SumApprovedCentsInRange(userID uuid.UUID, start, end time.Time) (int64, error)
	Update(expense *models.Expense) error
}

// MonthlySummaryRepositoryInterface defines the interface for monthly summary repository operations
type MonthlySummaryRepositoryInterface interface {
	ListScoped(s scope.Scope) ([]models.MonthlySummary, error)
	GetByUser(userID uuid.UUID) ([]models.MonthlySummary, error)
	GetByUserMonthYear(userID uuid.UUID, month, year int) (*models.MonthlySummary, error)
	Upsert(summary *models.MonthlySummary) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID) error
	DeleteExpired(now time.Time) error
}
