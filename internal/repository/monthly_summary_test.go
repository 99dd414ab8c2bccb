//go:build integration
// +build integration

package repository

import (
	"testing"

	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"
	"office-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MonthlySummaryRepositoryTestSuite tests the MonthlySummaryRepository
type MonthlySummaryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MonthlySummaryRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	staff *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *MonthlySummaryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMonthlySummaryRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MonthlySummaryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MonthlySummaryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(suite.org))
	suite.staff = suite.factories.User.WithOrganization(suite.org.ID)
	suite.NoError(suite.userRepo.Create(suite.staff))
}

// TearDownTest runs after each test
func (suite *MonthlySummaryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MonthlySummaryRepositoryTestSuite) summaryFor(month, year int) *models.MonthlySummary {
	return &models.MonthlySummary{
		UserID:             suite.staff.ID,
		Month:              month,
		Year:               year,
		TotalTasks:         5,
		CompletedTasks:     2,
		InProgressTasks:    1,
		PendingTasks:       1,
		AttendanceDays:     20,
		LeaveDays:          2,
		TotalExpensesCents: 15000,
		OrganizationID:     suite.staff.OrganizationID,
	}
}

// TestUpsertInsert tests the initial insert path
func (suite *MonthlySummaryRepositoryTestSuite) TestUpsertInsert() {
	err := suite.repo.Upsert(suite.summaryFor(3, 2024))
	suite.NoError(err)

	stored, err := suite.repo.GetByUserMonthYear(suite.staff.ID, 3, 2024)
	suite.NoError(err)
	suite.Equal(5, stored.TotalTasks)
	suite.Equal(int64(15000), stored.TotalExpensesCents)
}

// TestUpsertOverwrites tests that a rerun for the same month replaces the row
// instead of adding a second one
func (suite *MonthlySummaryRepositoryTestSuite) TestUpsertOverwrites() {
	suite.NoError(suite.repo.Upsert(suite.summaryFor(3, 2024)))

	revised := suite.summaryFor(3, 2024)
	revised.TotalTasks = 7
	revised.CompletedTasks = 4
	revised.TotalExpensesCents = 22500
	suite.NoError(suite.repo.Upsert(revised))

	rows, err := suite.repo.GetByUser(suite.staff.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(7, rows[0].TotalTasks)
	suite.Equal(4, rows[0].CompletedTasks)
	suite.Equal(int64(22500), rows[0].TotalExpensesCents)
}

// TestGetByUserOrdering tests that rows come back newest month first
func (suite *MonthlySummaryRepositoryTestSuite) TestGetByUserOrdering() {
	suite.NoError(suite.repo.Upsert(suite.summaryFor(12, 2023)))
	suite.NoError(suite.repo.Upsert(suite.summaryFor(1, 2024)))
	suite.NoError(suite.repo.Upsert(suite.summaryFor(3, 2024)))

	rows, err := suite.repo.GetByUser(suite.staff.ID)

	suite.NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal(3, rows[0].Month)
	suite.Equal(2024, rows[0].Year)
	suite.Equal(12, rows[2].Month)
	suite.Equal(2023, rows[2].Year)
}

// TestListScopedByOrganization tests the branch-bounded scope
func (suite *MonthlySummaryRepositoryTestSuite) TestListScopedByOrganization() {
	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(otherOrg))
	outsider := suite.factories.User.WithOrganization(otherOrg.ID)
	suite.NoError(suite.userRepo.Create(outsider))

	suite.NoError(suite.repo.Upsert(suite.summaryFor(3, 2024)))
	suite.NoError(suite.repo.Upsert(&models.MonthlySummary{
		UserID:         outsider.ID,
		Month:          3,
		Year:           2024,
		OrganizationID: outsider.OrganizationID,
	}))

	rows, err := suite.repo.ListScoped(scope.Scope{OrgID: &suite.org.ID})

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(suite.staff.ID, rows[0].UserID)
}

// Run the test suite
func TestMonthlySummaryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlySummaryRepositoryTestSuite))
}
