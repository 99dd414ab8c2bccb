package testutils

import (
	"time"

	"office-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Branch",
		Slug:         "test-branch-" + id.String()[:8],
		ContactEmail: "branch@test.com",
		ContactPhone: "+1-555-0100",
		Address:      "1 Test Street",
	}
}

// WithName sets a custom name and slug for the organization
func (f *OrganizationFactory) WithName(name, slug string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.Slug = slug
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test staff User with default values. The password hash matches
// the plaintext "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: "user-" + id.String()[:8] + "@test.com",
		// bcrypt("password123") at cost 10
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.UserRoleStaff,
		Department:   "Operations",
		Title:        "Staff Member",
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithOrganization attaches the user to an organization
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// Admin creates an admin user attached to an organization
func (f *UserFactory) Admin(orgID *uuid.UUID) *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	user.Title = "Administrator"
	user.OrganizationID = orgID
	return user
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a pending test Task assigned between the given users
func (f *TaskFactory) Create(assignedTo, assignedBy *models.User) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Test Task",
		Description:     "A task created for testing",
		AssignedToID:    assignedTo.ID,
		AssignedByID:    assignedBy.ID,
		OrganizationID:  assignedTo.OrganizationID,
		Status:          models.TaskStatusPending,
		Priority:        models.TaskPriorityMedium,
		CompletionLevel: 0,
	}
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(assignedTo, assignedBy *models.User, status models.TaskStatus) *models.Task {
	task := f.Create(assignedTo, assignedBy)
	task.Status = status
	return task
}

// AttendanceFactory provides methods to create test Attendance data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// Create creates a present Attendance record for the given user and date
func (f *AttendanceFactory) Create(user *models.User, date time.Time) *models.Attendance {
	return &models.Attendance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         user.ID,
		Date:           date,
		Status:         models.AttendanceStatusPresent,
		WorkHours:      8,
		OrganizationID: user.OrganizationID,
	}
}

// LeaveFactory provides methods to create test Leave data
type LeaveFactory struct{}

// NewLeaveFactory creates a new LeaveFactory
func NewLeaveFactory() *LeaveFactory {
	return &LeaveFactory{}
}

// Create creates a pending single-day Leave request for the given user
func (f *LeaveFactory) Create(user *models.User, start time.Time) *models.Leave {
	return &models.Leave{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         user.ID,
		Type:           models.LeaveTypeCasual,
		StartDate:      start,
		EndDate:        start,
		Days:           1,
		Reason:         "Personal errand",
		Status:         models.ApprovalStatusPending,
		OrganizationID: user.OrganizationID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Task         *TaskFactory
	Attendance   *AttendanceFactory
	Leave        *LeaveFactory
	Expense      *ExpenseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Task:         NewTaskFactory(),
		Attendance:   NewAttendanceFactory(),
		Leave:        NewLeaveFactory(),
		Expense:      NewExpenseFactory(),
	}
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// Create creates a pending Expense claim for the given user
func (f *ExpenseFactory) Create(user *models.User, date time.Time, amountCents int64) *models.Expense {
	return &models.Expense{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         user.ID,
		AmountCents:    amountCents,
		Description:    "Office supplies",
		Date:           date,
		Category:       "supplies",
		Status:         models.ApprovalStatusPending,
		OrganizationID: user.OrganizationID,
	}
}
