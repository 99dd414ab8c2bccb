package handlers

import (
	"net/http"
	"testing"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/mocks"
	"office-management-backend/internal/service"
	"office-management-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTaskService *mocks.MockTaskServiceInterface
	handler         *TaskHandler
	httpSuite       *testutils.HTTPTestSuite

	actor *models.User
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskService = mocks.NewMockTaskServiceInterface(suite.ctrl)

	suite.handler = NewTaskHandler(suite.mockTaskService)
	suite.httpSuite = testutils.SetupHTTPTest()

	orgID := uuid.New()
	suite.actor = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleAdmin,
		OrganizationID: &orgID,
	}

	// Stand-in for the session middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("current_user", suite.actor)
		c.Next()
	})

	api := suite.httpSuite.Router.Group("/api")
	tasks := api.Group("/tasks")
	{
		tasks.POST("", suite.handler.CreateTask)
		tasks.GET("", suite.handler.ListTasks)
		tasks.GET("/:id", suite.handler.GetTask)
		tasks.PATCH("/:id", suite.handler.UpdateTask)
		tasks.DELETE("/:id", suite.handler.DeleteTask)
	}
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTask tests creating a task
func (suite *TaskHandlerTestSuite) TestCreateTask() {
	assigneeID := uuid.New()
	requestBody := map[string]interface{}{
		"title":          "Prepare inventory report",
		"assigned_to_id": assigneeID.String(),
	}

	expectedResponse := &service.TaskResponse{
		ID:           uuid.New(),
		Title:        "Prepare inventory report",
		AssignedToID: assigneeID,
		Status:       models.TaskStatusPending,
		Priority:     models.TaskPriorityMedium,
	}

	suite.mockTaskService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/tasks", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TaskResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Title, response.Title)
	assert.Equal(suite.T(), models.TaskStatusPending, response.Status)
}

// TestCreateTaskAssigneeOutsideScope tests the scope violation mapping
func (suite *TaskHandlerTestSuite) TestCreateTaskAssigneeOutsideScope() {
	requestBody := map[string]interface{}{
		"title":          "Prepare inventory report",
		"assigned_to_id": uuid.New().String(),
	}

	suite.mockTaskService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrScopeViolation).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/tasks", requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestCreateTaskAssigneeNotFound tests the missing-assignee mapping
func (suite *TaskHandlerTestSuite) TestCreateTaskAssigneeNotFound() {
	requestBody := map[string]interface{}{
		"title":          "Prepare inventory report",
		"assigned_to_id": uuid.New().String(),
	}

	suite.mockTaskService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/tasks", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetTaskInvalidID tests the UUID validation on the path parameter
func (suite *TaskHandlerTestSuite) TestGetTaskInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/tasks/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid task ID")
}

// TestUpdateTaskDisallowedTransition tests the 422 mapping for status transitions
func (suite *TaskHandlerTestSuite) TestUpdateTaskDisallowedTransition() {
	taskID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "in_progress",
	}

	suite.mockTaskService.EXPECT().
		Update(suite.actor, taskID, gomock.Any()).
		Return(nil, &apperrors.StateTransitionError{Entity: "task", From: "completed", To: "in_progress"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/tasks/"+taskID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestUpdateTaskForbidden tests the 403 mapping for non-assignee staff
func (suite *TaskHandlerTestSuite) TestUpdateTaskForbidden() {
	taskID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "completed",
	}

	suite.mockTaskService.EXPECT().
		Update(suite.actor, taskID, gomock.Any()).
		Return(nil, apperrors.ErrForbidden).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/tasks/"+taskID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestListTasks tests listing tasks for the caller
func (suite *TaskHandlerTestSuite) TestListTasks() {
	expected := []service.TaskResponse{
		{ID: uuid.New(), Title: "Prepare inventory report", Status: models.TaskStatusPending},
		{ID: uuid.New(), Title: "Reconcile petty cash", Status: models.TaskStatusCompleted},
	}

	suite.mockTaskService.EXPECT().
		List(suite.actor).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/tasks", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.TaskResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestDeleteTask tests deleting a task
func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	taskID := uuid.New()

	suite.mockTaskService.EXPECT().
		Delete(suite.actor, taskID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/tasks/"+taskID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteTaskNotFound tests deleting a missing task
func (suite *TaskHandlerTestSuite) TestDeleteTaskNotFound() {
	taskID := uuid.New()

	suite.mockTaskService.EXPECT().
		Delete(suite.actor, taskID).
		Return(apperrors.ErrTaskNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/tasks/"+taskID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
