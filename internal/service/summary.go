package service

import (
	"errors"
	"fmt"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/logger"
	"office-management-backend/internal/repository"
	"office-management-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryService recomputes and serves per-user monthly aggregates
type SummaryService struct {
	repo           repository.MonthlySummaryRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	taskRepo       repository.TaskRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	expenseRepo    repository.ExpenseRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	repo repository.MonthlySummaryRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	attendanceRepo repository.AttendanceRepositoryInterface,
	expenseRepo repository.ExpenseRepositoryInterface,
	validator *validator.Validate,
) *SummaryService {
	return &SummaryService{
		repo:           repo,
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
		expenseRepo:    expenseRepo,
		validator:      validator,
		log:            logger.New(),
	}
}

// GenerateSummariesRequest represents the request to run the monthly batch
type GenerateSummariesRequest struct {
	Month int `json:"month" validate:"required,gte=1,lte=12"`
	Year  int `json:"year" validate:"required,gte=2000,lte=2100"`
}

// GenerateSummariesResult reports the outcome of a batch run. Users are processed
// independently: one user's failure never blocks the rest.
type GenerateSummariesResult struct {
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	Generated int      `json:"generated"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// SummaryResponse represents one monthly summary row
type SummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	UserName        string     `json:"user_name,omitempty"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	TotalTasks      int        `json:"total_tasks"`
	CompletedTasks  int        `json:"completed_tasks"`
	InProgressTasks int        `json:"in_progress_tasks"`
	PendingTasks    int        `json:"pending_tasks"`
	AttendanceDays  int        `json:"attendance_days"`
	LeaveDays       int        `json:"leave_days"`
	TotalExpenses   string     `json:"total_expenses"`
	OrganizationID  *uuid.UUID `json:"organization_id,omitempty"`
}

// Generate recomputes summaries for every user within the actor's scope and upserts
// one row per (user, month, year). Re-running for the same month overwrites the
// previous aggregates, so the batch is idempotent.
func (s *SummaryService) Generate(actor *models.User, req *GenerateSummariesRequest) (*GenerateSummariesResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !actor.Role.IsPrivileged() {
		return nil, apperrors.ErrForbidden
	}

	var (
		users []models.User
		err   error
	)
	sc := scope.Resolve(actor)
	if sc.OrgID != nil {
		users, err = s.userRepo.GetByOrganizationID(*sc.OrgID)
	} else {
		users, err = s.userRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &GenerateSummariesResult{Month: req.Month, Year: req.Year}
	for _, user := range users {
		if err := s.generateForUser(&user, req.Month, req.Year); err != nil {
			s.log.WithField("user_id", user.ID).Errorf("summary generation failed: %v", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", user.ID, err))
			continue
		}
		result.Generated++
	}

	return result, nil
}

func (s *SummaryService) generateForUser(user *models.User, month, year int) error {
	start, end := monthRange(month, year)

	tasks, err := s.taskRepo.GetByAssignee(user.ID)
	if err != nil {
		return fmt.Errorf("fetch tasks: %w", err)
	}
	var total, completed, inProgress, pending int
	for _, task := range tasks {
		total++
		// Statuses outside the three buckets (reassigned) count toward the
		// total but none of the partitions.
		switch task.Status {
		case models.TaskStatusCompleted:
			completed++
		case models.TaskStatusInProgress:
			inProgress++
		case models.TaskStatusPending:
			pending++
		}
	}

	attendance, err := s.attendanceRepo.GetByUserAndDateRange(user.ID, start, end)
	if err != nil {
		return fmt.Errorf("fetch attendance: %w", err)
	}
	var attendanceDays, leaveDays int
	for _, record := range attendance {
		switch record.Status {
		case models.AttendanceStatusPresent:
			attendanceDays++
		case models.AttendanceStatusLeave:
			leaveDays++
		}
	}

	expenseCents, err := s.expenseRepo.SumApprovedCentsInRange(user.ID, start, end)
	if err != nil {
		return fmt.Errorf("sum expenses: %w", err)
	}

	summary := &models.MonthlySummary{
		UserID:             user.ID,
		Month:              month,
		Year:               year,
		TotalTasks:         total,
		CompletedTasks:     completed,
		InProgressTasks:    inProgress,
		PendingTasks:       pending,
		AttendanceDays:     attendanceDays,
		LeaveDays:          leaveDays,
		TotalExpensesCents: expenseCents,
		OrganizationID:     user.OrganizationID,
	}
	if err := s.repo.Upsert(summary); err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

// List retrieves the summaries visible within the actor's scope
func (s *SummaryService) List(actor *models.User) ([]SummaryResponse, error) {
	summaries, err := s.repo.ListScoped(scope.Resolve(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	responses := make([]SummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = *s.toResponse(&summary)
	}
	return responses, nil
}

// GetByUser retrieves one user's summaries. Staff may only request their own; an
// organization-scoped admin may only request users of their organization.
func (s *SummaryService) GetByUser(actor *models.User, userID uuid.UUID) ([]SummaryResponse, error) {
	if userID != actor.ID {
		if !actor.Role.IsPrivileged() {
			return nil, apperrors.ErrForbidden
		}
		target, err := s.userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if !scope.Resolve(actor).CoversRecord(target.ID, target.OrganizationID) {
			return nil, apperrors.ErrScopeViolation
		}
	}

	summaries, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get summaries: %w", err)
	}

	responses := make([]SummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = *s.toResponse(&summary)
	}
	return responses, nil
}

func (s *SummaryService) toResponse(summary *models.MonthlySummary) *SummaryResponse {
	resp := &SummaryResponse{
		ID:              summary.ID,
		UserID:          summary.UserID,
		Month:           summary.Month,
		Year:            summary.Year,
		TotalTasks:      summary.TotalTasks,
		CompletedTasks:  summary.CompletedTasks,
		InProgressTasks: summary.InProgressTasks,
		PendingTasks:    summary.PendingTasks,
		AttendanceDays:  summary.AttendanceDays,
		LeaveDays:       summary.LeaveDays,
		TotalExpenses:   models.FormatCents(summary.TotalExpensesCents),
		OrganizationID:  summary.OrganizationID,
	}
	if summary.User != nil {
		resp.UserName = summary.User.FullName()
	}
	return resp
}
