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
)

// ExpenseServiceTestSuite defines the test suite for ExpenseService
type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockExpenseRepositoryInterface
	expenseService *service.ExpenseService

	orgID uuid.UUID
	admin *models.User
	staff *models.User
}

// SetupTest sets up the test suite
func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockExpenseRepositoryInterface(suite.ctrl)
	suite.expenseService = service.NewExpenseService(suite.mockRepo, validator.New())

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
func (suite *ExpenseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExpenseServiceTestSuite) pendingExpense() *models.Expense {
	return &models.Expense{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		UserID:         suite.staff.ID,
		AmountCents:    15000,
		Description:    "Printer cartridges",
		Date:           time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Category:       "supplies",
		Status:         models.ApprovalStatusPending,
		OrganizationID: &suite.orgID,
	}
}

// TestCreateExpense tests that the decimal amount is stored as integer cents
func (suite *ExpenseServiceTestSuite) TestCreateExpense() {
	req := &service.CreateExpenseRequest{
		Amount:      "150.00",
		Description: "Printer cartridges",
		Date:        "2024-03-11",
		Category:    "supplies",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(expense *models.Expense) error {
			expense.ID = uuid.New()
			suite.Equal(int64(15000), expense.AmountCents)
			suite.Equal(models.ApprovalStatusPending, expense.Status)
			suite.Equal(suite.staff.ID, expense.UserID)
			return nil
		}).
		Times(1)

	response, err := suite.expenseService.Create(suite.staff, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "150.00", response.Amount)
}

// TestCreateExpenseAmountParsing tests accepted and rejected amount formats
func (suite *ExpenseServiceTestSuite) TestCreateExpenseAmountParsing() {
	cases := []struct {
		amount    string
		wantCents int64
		wantErr   bool
	}{
		{amount: "150", wantCents: 15000},
		{amount: "150.5", wantCents: 15050},
		{amount: "0.99", wantCents: 99},
		{amount: "150.005", wantErr: true},
		{amount: "-10.00", wantErr: true},
		{amount: "-0.50", wantErr: true},
		{amount: "+1.00", wantErr: true},
		{amount: "0", wantErr: true},
		{amount: "abc", wantErr: true},
	}

	for _, tc := range cases {
		if !tc.wantErr {
			suite.mockRepo.EXPECT().
				Create(gomock.Any()).
				DoAndReturn(func(expense *models.Expense) error {
					suite.Equal(tc.wantCents, expense.AmountCents, "amount %q", tc.amount)
					return nil
				}).
				Times(1)
		}

		_, err := suite.expenseService.Create(suite.staff, &service.CreateExpenseRequest{
			Amount:      tc.amount,
			Description: "Printer cartridges",
			Date:        "2024-03-11",
			Category:    "supplies",
		})

		if tc.wantErr {
			var validationErr *apperrors.ValidationError
			assert.ErrorAs(suite.T(), err, &validationErr, "amount %q", tc.amount)
		} else {
			assert.NoError(suite.T(), err, "amount %q", tc.amount)
		}
	}
}

// TestApproveExpense tests that approval stamps the approver and timestamp
func (suite *ExpenseServiceTestSuite) TestApproveExpense() {
	expense := suite.pendingExpense()

	suite.mockRepo.EXPECT().GetByID(expense.ID).Return(expense, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Expense) error {
			suite.Equal(models.ApprovalStatusApproved, updated.Status)
			suite.Require().NotNil(updated.ApprovedByID)
			suite.Equal(suite.admin.ID, *updated.ApprovedByID)
			suite.NotNil(updated.ApprovedAt)
			return nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().GetByID(expense.ID).Return(expense, nil).Times(1)

	response, err := suite.expenseService.UpdateStatus(suite.admin, expense.ID, &service.UpdateExpenseStatusRequest{
		Status: models.ApprovalStatusApproved,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestStaffCannotDecideExpense tests that the decision endpoint is admin-only
func (suite *ExpenseServiceTestSuite) TestStaffCannotDecideExpense() {
	response, err := suite.expenseService.UpdateStatus(suite.staff, uuid.New(), &service.UpdateExpenseStatusRequest{
		Status: models.ApprovalStatusRejected,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestDoubleDecisionOnExpense tests that a decided claim cannot be re-decided
func (suite *ExpenseServiceTestSuite) TestDoubleDecisionOnExpense() {
	expense := suite.pendingExpense()
	expense.Status = models.ApprovalStatusRejected

	suite.mockRepo.EXPECT().GetByID(expense.ID).Return(expense, nil).Times(1)

	response, err := suite.expenseService.UpdateStatus(suite.admin, expense.ID, &service.UpdateExpenseStatusRequest{
		Status: models.ApprovalStatusApproved,
	})

	var transitionErr *apperrors.StateTransitionError
	assert.ErrorAs(suite.T(), err, &transitionErr)
	assert.Nil(suite.T(), response)
}

// TestListRejectsUnknownStatus tests validation of the status filter
func (suite *ExpenseServiceTestSuite) TestListRejectsUnknownStatus() {
	responses, err := suite.expenseService.List(suite.admin, models.ApprovalStatus("archived"))

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Nil(suite.T(), responses)
}

// TestExpenseServiceTestSuite runs the test suite
func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
