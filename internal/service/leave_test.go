package service_test

import (
	"testing"
	"time"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/mocks"
	"office-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeaveServiceTestSuite defines the test suite for LeaveService
type LeaveServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockLeaveRepositoryInterface
	leaveService *service.LeaveService

	orgID uuid.UUID
	admin *models.User
	staff *models.User
}

// SetupTest sets up the test suite
func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLeaveRepositoryInterface(suite.ctrl)
	suite.leaveService = service.NewLeaveService(suite.mockRepo, validator.New())

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
func (suite *LeaveServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeaveServiceTestSuite) pendingLeave() *models.Leave {
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	return &models.Leave{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		UserID:         suite.staff.ID,
		Type:           models.LeaveTypeCasual,
		StartDate:      start,
		EndDate:        start,
		Days:           1,
		Reason:         "Family function",
		Status:         models.ApprovalStatusPending,
		OrganizationID: &suite.orgID,
	}
}

// TestCreateLeave tests that a new request starts out pending
func (suite *LeaveServiceTestSuite) TestCreateLeave() {
	req := &service.CreateLeaveRequest{
		Type:      models.LeaveTypeCasual,
		StartDate: "2024-03-11",
		EndDate:   "2024-03-12",
		Days:      2,
		Reason:    "Family function",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(leave *models.Leave) error {
			leave.ID = uuid.New()
			suite.Equal(models.ApprovalStatusPending, leave.Status)
			suite.Equal(suite.staff.ID, leave.UserID)
			suite.Equal(suite.orgID, *leave.OrganizationID)
			return nil
		}).
		Times(1)

	response, err := suite.leaveService.Create(suite.staff, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.ApprovalStatusPending, response.Status)
	assert.Equal(suite.T(), "2024-03-11", response.StartDate)
}

// TestCreateLeaveInvertedRange tests that end_date may not precede start_date
func (suite *LeaveServiceTestSuite) TestCreateLeaveInvertedRange() {
	response, err := suite.leaveService.Create(suite.staff, &service.CreateLeaveRequest{
		Type:      models.LeaveTypeSick,
		StartDate: "2024-03-12",
		EndDate:   "2024-03-11",
		Days:      1,
		Reason:    "Fever",
	})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Nil(suite.T(), response)
}

// TestCreateLeaveUnknownType tests rejection of an unrecognized leave type
func (suite *LeaveServiceTestSuite) TestCreateLeaveUnknownType() {
	response, err := suite.leaveService.Create(suite.staff, &service.CreateLeaveRequest{
		Type:      models.LeaveType("sabbatical"),
		StartDate: "2024-03-11",
		EndDate:   "2024-03-11",
		Days:      1,
		Reason:    "Break",
	})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Nil(suite.T(), response)
}

// TestApproveLeave tests that approval stamps the approver and timestamp
func (suite *LeaveServiceTestSuite) TestApproveLeave() {
	leave := suite.pendingLeave()

	suite.mockRepo.EXPECT().GetByID(leave.ID).Return(leave, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Leave) error {
			suite.Equal(models.ApprovalStatusApproved, updated.Status)
			suite.Require().NotNil(updated.ApprovedByID)
			suite.Equal(suite.admin.ID, *updated.ApprovedByID)
			suite.NotNil(updated.ApprovedAt)
			return nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().GetByID(leave.ID).Return(leave, nil).Times(1)

	response, err := suite.leaveService.UpdateStatus(suite.admin, leave.ID, &service.UpdateLeaveStatusRequest{
		Status: models.ApprovalStatusApproved,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestStaffCannotDecide tests that the decision endpoint is admin-only
func (suite *LeaveServiceTestSuite) TestStaffCannotDecide() {
	response, err := suite.leaveService.UpdateStatus(suite.staff, uuid.New(), &service.UpdateLeaveStatusRequest{
		Status: models.ApprovalStatusApproved,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestDecideOutsideScope tests that an org admin cannot decide another branch's request
func (suite *LeaveServiceTestSuite) TestDecideOutsideScope() {
	otherOrg := uuid.New()
	leave := suite.pendingLeave()
	leave.UserID = uuid.New()
	leave.OrganizationID = &otherOrg

	suite.mockRepo.EXPECT().GetByID(leave.ID).Return(leave, nil).Times(1)

	response, err := suite.leaveService.UpdateStatus(suite.admin, leave.ID, &service.UpdateLeaveStatusRequest{
		Status: models.ApprovalStatusRejected,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrScopeViolation)
	assert.Nil(suite.T(), response)
}

// TestDoubleDecisionRejected tests that approved and rejected are terminal
func (suite *LeaveServiceTestSuite) TestDoubleDecisionRejected() {
	leave := suite.pendingLeave()
	leave.Status = models.ApprovalStatusApproved

	suite.mockRepo.EXPECT().GetByID(leave.ID).Return(leave, nil).Times(1)

	response, err := suite.leaveService.UpdateStatus(suite.admin, leave.ID, &service.UpdateLeaveStatusRequest{
		Status: models.ApprovalStatusRejected,
	})

	var transitionErr *apperrors.StateTransitionError
	assert.ErrorAs(suite.T(), err, &transitionErr)
	assert.Nil(suite.T(), response)
}

// TestDecideLeaveNotFound tests the missing-record path
func (suite *LeaveServiceTestSuite) TestDecideLeaveNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.leaveService.UpdateStatus(suite.admin, id, &service.UpdateLeaveStatusRequest{
		Status: models.ApprovalStatusApproved,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveNotFound)
	assert.Nil(suite.T(), response)
}

// TestListWithStatusFilter tests that the filter is forwarded to the repository
func (suite *LeaveServiceTestSuite) TestListWithStatusFilter() {
	leave := suite.pendingLeave()

	suite.mockRepo.EXPECT().
		ListScoped(gomock.Any(), models.ApprovalStatusPending).
		Return([]models.Leave{*leave}, nil).
		Times(1)

	responses, err := suite.leaveService.List(suite.admin, models.ApprovalStatusPending)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), leave.ID, responses[0].ID)
}

// TestLeaveServiceTestSuite runs the test suite
func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
