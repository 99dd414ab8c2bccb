package service_test

import (
	"testing"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/mocks"
	"office-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTaskRepo *mocks.MockTaskRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	taskService  *service.TaskService

	orgID uuid.UUID
	admin *models.User
	staff *models.User
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.taskService = service.NewTaskService(suite.mockTaskRepo, suite.mockUserRepo, validator.New())

	suite.orgID = uuid.New()
	suite.admin = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleAdmin,
		OrganizationID: &suite.orgID,
	}
	suite.staff = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStaff,
		OrganizationID: &suite.orgID,
	}
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) taskFor(assignee *models.User, status models.TaskStatus) *models.Task {
	return &models.Task{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Title:          "Prepare inventory report",
		AssignedToID:   assignee.ID,
		AssignedByID:   suite.admin.ID,
		OrganizationID: assignee.OrganizationID,
		Status:         status,
		Priority:       models.TaskPriorityMedium,
	}
}

// TestCreateTask tests assigning a task to a staff member in the admin's branch
func (suite *TaskServiceTestSuite) TestCreateTask() {
	req := &service.CreateTaskRequest{
		Title:        "Prepare inventory report",
		AssignedToID: suite.staff.ID,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(suite.staff.ID).
		Return(suite.staff, nil).
		Times(1)

	var createdID uuid.UUID
	suite.mockTaskRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(task *models.Task) error {
			task.ID = uuid.New()
			createdID = task.ID
			suite.Equal(models.TaskStatusPending, task.Status)
			suite.Equal(models.TaskPriorityMedium, task.Priority)
			suite.Equal(suite.admin.ID, task.AssignedByID)
			suite.Equal(suite.orgID, *task.OrganizationID)
			return nil
		}).
		Times(1)

	suite.mockTaskRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Task, error) {
			task := suite.taskFor(suite.staff, models.TaskStatusPending)
			task.ID = createdID
			return task, nil
		}).
		Times(1)

	response, err := suite.taskService.Create(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.TaskStatusPending, response.Status)
}

// TestCreateTaskOutsideScope tests that an org admin cannot assign to another branch
func (suite *TaskServiceTestSuite) TestCreateTaskOutsideScope() {
	otherOrg := uuid.New()
	outsider := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStaff,
		OrganizationID: &otherOrg,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(outsider.ID).
		Return(outsider, nil).
		Times(1)

	response, err := suite.taskService.Create(suite.admin, &service.CreateTaskRequest{
		Title:        "Prepare inventory report",
		AssignedToID: outsider.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrScopeViolation)
	assert.Nil(suite.T(), response)
}

// TestStaffUpdatesOwnTask tests that an assignee can progress their own task
func (suite *TaskServiceTestSuite) TestStaffUpdatesOwnTask() {
	task := suite.taskFor(suite.staff, models.TaskStatusPending)
	newStatus := models.TaskStatusInProgress
	level := 30

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Task) error {
			suite.Equal(models.TaskStatusInProgress, updated.Status)
			suite.Equal(30, updated.CompletionLevel)
			return nil
		}).
		Times(1)
	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	response, err := suite.taskService.Update(suite.staff, task.ID, &service.UpdateTaskRequest{
		Status:          &newStatus,
		CompletionLevel: &level,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestStaffCannotUpdateColleagueTask tests the cross-record authorization check
func (suite *TaskServiceTestSuite) TestStaffCannotUpdateColleagueTask() {
	colleague := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStaff,
		OrganizationID: &suite.orgID,
	}
	task := suite.taskFor(colleague, models.TaskStatusPending)
	newStatus := models.TaskStatusInProgress

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	response, err := suite.taskService.Update(suite.staff, task.ID, &service.UpdateTaskRequest{
		Status: &newStatus,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestStaffCannotChangeAdminFields tests that an assignee cannot retitle or reassign
func (suite *TaskServiceTestSuite) TestStaffCannotChangeAdminFields() {
	task := suite.taskFor(suite.staff, models.TaskStatusPending)
	title := "Different title"

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	response, err := suite.taskService.Update(suite.staff, task.ID, &service.UpdateTaskRequest{
		Title: &title,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestCompletedTaskIsTerminal tests that a completed task rejects further transitions
func (suite *TaskServiceTestSuite) TestCompletedTaskIsTerminal() {
	task := suite.taskFor(suite.staff, models.TaskStatusCompleted)
	newStatus := models.TaskStatusInProgress

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	response, err := suite.taskService.Update(suite.admin, task.ID, &service.UpdateTaskRequest{
		Status: &newStatus,
	})

	var transitionErr *apperrors.StateTransitionError
	assert.ErrorAs(suite.T(), err, &transitionErr)
	assert.Nil(suite.T(), response)
}

// TestSameStatusIsNoOp tests that re-submitting the current status does not error
func (suite *TaskServiceTestSuite) TestSameStatusIsNoOp() {
	task := suite.taskFor(suite.staff, models.TaskStatusCompleted)
	sameStatus := models.TaskStatusCompleted

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	response, err := suite.taskService.Update(suite.admin, task.ID, &service.UpdateTaskRequest{
		Status: &sameStatus,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, response.Status)
}

// TestReassignedTaskCanRestart tests the reassigned to in_progress transition
func (suite *TaskServiceTestSuite) TestReassignedTaskCanRestart() {
	task := suite.taskFor(suite.staff, models.TaskStatusReassigned)
	newStatus := models.TaskStatusInProgress

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	_, err := suite.taskService.Update(suite.staff, task.ID, &service.UpdateTaskRequest{
		Status: &newStatus,
	})

	assert.NoError(suite.T(), err)
}

// TestDeleteTaskOutsideScope tests deletion of another branch's task
func (suite *TaskServiceTestSuite) TestDeleteTaskOutsideScope() {
	otherOrg := uuid.New()
	task := suite.taskFor(suite.staff, models.TaskStatusPending)
	task.OrganizationID = &otherOrg
	task.AssignedToID = uuid.New()

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)

	err := suite.taskService.Delete(suite.admin, task.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
