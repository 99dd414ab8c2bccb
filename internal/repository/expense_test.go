//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"
	"office-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ExpenseRepositoryTestSuite tests the ExpenseRepository
type ExpenseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ExpenseRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	staff *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ExpenseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewExpenseRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExpenseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExpenseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(suite.org))
	suite.staff = suite.factories.User.WithOrganization(suite.org.ID)
	suite.NoError(suite.userRepo.Create(suite.staff))
}

// TearDownTest runs after each test
func (suite *ExpenseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ExpenseRepositoryTestSuite) createWithStatus(date time.Time, amountCents int64, status models.ApprovalStatus) *models.Expense {
	expense := suite.factories.Expense.Create(suite.staff, date, amountCents)
	expense.Status = status
	suite.NoError(suite.repo.Create(expense))
	return expense
}

// TestListScopedStatusFilter tests filtering claims by approval status
func (suite *ExpenseRepositoryTestSuite) TestListScopedStatusFilter() {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	pending := suite.createWithStatus(date, 5000, models.ApprovalStatusPending)
	suite.createWithStatus(date, 7500, models.ApprovalStatusApproved)

	expenses, err := suite.repo.ListScoped(scope.Scope{OrgID: &suite.org.ID}, models.ApprovalStatusPending)

	suite.NoError(err)
	suite.Len(expenses, 1)
	suite.Equal(pending.ID, expenses[0].ID)
}

// TestListScopedNoFilter tests that an empty status lists every claim in scope
func (suite *ExpenseRepositoryTestSuite) TestListScopedNoFilter() {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	suite.createWithStatus(date, 5000, models.ApprovalStatusPending)
	suite.createWithStatus(date, 7500, models.ApprovalStatusRejected)

	expenses, err := suite.repo.ListScoped(scope.Scope{All: true}, "")

	suite.NoError(err)
	suite.Len(expenses, 2)
}

// TestSumApprovedCentsInRange tests the summary aggregation: only approved claims
// with dates inside the window count
func (suite *ExpenseRepositoryTestSuite) TestSumApprovedCentsInRange() {
	suite.createWithStatus(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 10000, models.ApprovalStatusApproved)
	suite.createWithStatus(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 5000, models.ApprovalStatusApproved)
	suite.createWithStatus(time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC), 9999, models.ApprovalStatusPending)
	suite.createWithStatus(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), 8888, models.ApprovalStatusApproved)

	total, err := suite.repo.SumApprovedCentsInRange(
		suite.staff.ID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	suite.NoError(err)
	suite.Equal(int64(15000), total)
}

// TestSumApprovedCentsEmpty tests that a month with no approved claims sums to zero
func (suite *ExpenseRepositoryTestSuite) TestSumApprovedCentsEmpty() {
	total, err := suite.repo.SumApprovedCentsInRange(
		suite.staff.ID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	suite.NoError(err)
	suite.Equal(int64(0), total)
}

// TestUpdatePersistsDecision tests saving an approval decision
func (suite *ExpenseRepositoryTestSuite) TestUpdatePersistsDecision() {
	expense := suite.createWithStatus(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), 5000, models.ApprovalStatusPending)

	now := time.Now()
	expense.Status = models.ApprovalStatusApproved
	expense.ApprovedByID = &suite.staff.ID
	expense.ApprovedAt = &now
	suite.NoError(suite.repo.Update(expense))

	updated, err := suite.repo.GetByID(expense.ID)
	suite.NoError(err)
	suite.Equal(models.ApprovalStatusApproved, updated.Status)
	suite.NotNil(updated.ApprovedByID)
	suite.NotNil(updated.ApprovedAt)
}

// Run the test suite
func TestExpenseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositoryTestSuite))
}
