package bootstrap_test

import (
	"os"
	"path/filepath"
	"testing"

	"office-management-backend/internal/bootstrap"
	"office-management-backend/internal/database/models"
	"office-management-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapTestSuite defines the test suite for first-run seeding
type BootstrapTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
}

// SetupTest sets up the test suite
func (suite *BootstrapTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
}

// TearDownTest cleans up after each test
func (suite *BootstrapTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSeedDefaults tests that an empty store receives the default accounts with
// hashed passwords
func (suite *BootstrapTestSuite) TestSeedDefaults() {
	suite.mockUserRepo.EXPECT().Count().Return(int64(0), nil).Times(1)

	var seeded []*models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			seeded = append(seeded, user)
			return nil
		}).
		Times(2)

	err := bootstrap.Seed(suite.mockUserRepo, "")

	suite.Require().NoError(err)
	suite.Require().Len(seeded, 2)
	assert.Equal(suite.T(), "admin@office.local", seeded[0].Email)
	assert.Equal(suite.T(), models.UserRoleAdmin, seeded[0].Role)
	assert.Equal(suite.T(), "staff@office.local", seeded[1].Email)
	assert.Equal(suite.T(), models.UserRoleStaff, seeded[1].Role)
	for _, user := range seeded {
		assert.True(suite.T(), user.IsActive)
		assert.NotContains(suite.T(), []string{"admin123", "staff123"}, user.PasswordHash)
	}
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(seeded[0].PasswordHash), []byte("admin123")))
}

// TestSeedSkipsNonEmptyStore tests the idempotence short-circuit
func (suite *BootstrapTestSuite) TestSeedSkipsNonEmptyStore() {
	suite.mockUserRepo.EXPECT().Count().Return(int64(3), nil).Times(1)

	err := bootstrap.Seed(suite.mockUserRepo, "")

	assert.NoError(suite.T(), err)
}

// TestSeedFromFile tests loading accounts from a YAML seed file
func (suite *BootstrapTestSuite) TestSeedFromFile() {
	path := filepath.Join(suite.T().TempDir(), "seed.yaml")
	content := `accounts:
  - email: owner@office.local
    password: ownerpass1
    first_name: Owner
    last_name: Person
    role: proprietor
`
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	suite.mockUserRepo.EXPECT().Count().Return(int64(0), nil).Times(1)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal("owner@office.local", user.Email)
			suite.Equal(models.UserRoleProprietor, user.Role)
			return nil
		}).
		Times(1)

	err := bootstrap.Seed(suite.mockUserRepo, path)

	assert.NoError(suite.T(), err)
}

// TestSeedFromEmptyFile tests that a seed file with no accounts is rejected
func (suite *BootstrapTestSuite) TestSeedFromEmptyFile() {
	path := filepath.Join(suite.T().TempDir(), "seed.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("accounts: []\n"), 0o600))

	suite.mockUserRepo.EXPECT().Count().Return(int64(0), nil).Times(1)

	err := bootstrap.Seed(suite.mockUserRepo, path)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "no accounts")
}

// TestSeedUnknownRole tests that a bad role in the seed file aborts seeding
func (suite *BootstrapTestSuite) TestSeedUnknownRole() {
	path := filepath.Join(suite.T().TempDir(), "seed.yaml")
	content := `accounts:
  - email: owner@office.local
    password: ownerpass1
    first_name: Owner
    last_name: Person
    role: superuser
`
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	suite.mockUserRepo.EXPECT().Count().Return(int64(0), nil).Times(1)

	err := bootstrap.Seed(suite.mockUserRepo, path)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "unknown role")
}

// TestBootstrapTestSuite runs the test suite
func TestBootstrapTestSuite(t *testing.T) {
	suite.Run(t, new(BootstrapTestSuite))
}
