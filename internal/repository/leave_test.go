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

// LeaveRepositoryTestSuite tests the LeaveRepository
type LeaveRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaveRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	staff *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *LeaveRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLeaveRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeaveRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeaveRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(suite.org))
	suite.staff = suite.factories.User.WithOrganization(suite.org.ID)
	suite.NoError(suite.userRepo.Create(suite.staff))
}

// TearDownTest runs after each test
func (suite *LeaveRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests the create and preload round trip
func (suite *LeaveRepositoryTestSuite) TestCreateAndGetByID() {
	leave := suite.factories.Leave.Create(suite.staff, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(leave))

	retrieved, err := suite.repo.GetByID(leave.ID)

	suite.NoError(err)
	suite.Equal(leave.ID, retrieved.ID)
	suite.Equal(models.ApprovalStatusPending, retrieved.Status)
	suite.Require().NotNil(retrieved.User)
	suite.Equal(suite.staff.Email, retrieved.User.Email)
}

// TestListScopedStatusFilter tests filtering requests by approval status
func (suite *LeaveRepositoryTestSuite) TestListScopedStatusFilter() {
	pending := suite.factories.Leave.Create(suite.staff, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(pending))

	approved := suite.factories.Leave.Create(suite.staff, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))
	approved.Status = models.ApprovalStatusApproved
	suite.NoError(suite.repo.Create(approved))

	leaves, err := suite.repo.ListScoped(scope.Scope{OrgID: &suite.org.ID}, models.ApprovalStatusApproved)

	suite.NoError(err)
	suite.Len(leaves, 1)
	suite.Equal(approved.ID, leaves[0].ID)
}

// TestListScopedByUser tests that the self-only scope hides colleague requests
func (suite *LeaveRepositoryTestSuite) TestListScopedByUser() {
	colleague := suite.factories.User.WithOrganization(suite.org.ID)
	suite.NoError(suite.userRepo.Create(colleague))

	own := suite.factories.Leave.Create(suite.staff, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(own))
	suite.NoError(suite.repo.Create(suite.factories.Leave.Create(colleague, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))))

	leaves, err := suite.repo.ListScoped(scope.Scope{UserID: &suite.staff.ID}, "")

	suite.NoError(err)
	suite.Len(leaves, 1)
	suite.Equal(own.ID, leaves[0].ID)
}

// TestUpdatePersistsDecision tests saving an approval decision
func (suite *LeaveRepositoryTestSuite) TestUpdatePersistsDecision() {
	leave := suite.factories.Leave.Create(suite.staff, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(leave))

	now := time.Now()
	leave.Status = models.ApprovalStatusRejected
	leave.ApprovedByID = &suite.staff.ID
	leave.ApprovedAt = &now
	suite.NoError(suite.repo.Update(leave))

	updated, err := suite.repo.GetByID(leave.ID)
	suite.NoError(err)
	suite.Equal(models.ApprovalStatusRejected, updated.Status)
	suite.NotNil(updated.ApprovedAt)
}

// Run the test suite
func TestLeaveRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRepositoryTestSuite))
}
