//go:build integration
// +build integration

package repository

import (
	"testing"

	"office-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateDuplicateSlug tests the unique constraint on slug
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateSlug() {
	org1 := suite.factories.Organization.WithName("Main Branch", "main-branch")
	suite.NoError(suite.repo.Create(org1))

	org2 := suite.factories.Organization.WithName("Other Branch", "main-branch")

	err := suite.repo.Create(org2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetBySlug tests retrieving an organization by slug
func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.WithName("Main Branch", "main-branch")
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetBySlug("main-branch")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetBySlugNotFound tests retrieving a non-existent slug
func (suite *OrganizationRepositoryTestSuite) TestGetBySlugNotFound() {
	org, err := suite.repo.GetBySlug("missing-branch")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

// TestGetAll tests listing organizations
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Organization.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Organization.Create()))

	orgs, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(orgs, 2)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.Name = "Renamed Branch"
	suite.NoError(suite.repo.Update(org))

	updated, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Renamed Branch", updated.Name)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
