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
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockOrganizationRepositoryInterface
	orgService *service.OrganizationService
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.orgService = service.NewOrganizationService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating a branch
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{
		Name:         "Main Branch",
		Slug:         "main-branch",
		ContactEmail: "branch@office.local",
	}

	suite.mockRepo.EXPECT().GetBySlug(req.Slug).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			org.ID = uuid.New()
			suite.Equal("main-branch", org.Slug)
			return nil
		}).
		Times(1)

	response, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Main Branch", response.Name)
}

// TestCreateOrganizationDuplicateSlug tests the unique-slug guard
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateSlug() {
	req := &service.CreateOrganizationRequest{
		Name: "Main Branch",
		Slug: "main-branch",
	}

	suite.mockRepo.EXPECT().
		GetBySlug(req.Slug).
		Return(&models.Organization{Slug: req.Slug}, nil).
		Times(1)

	response, err := suite.orgService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.Nil(suite.T(), response)
}

// TestCreateOrganizationMissingName tests request validation
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationMissingName() {
	response, err := suite.orgService.Create(&service.CreateOrganizationRequest{Slug: "main-branch"})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Nil(suite.T(), response)
}

// TestGetOrganizationNotFound tests the missing-record path
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.orgService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), response)
}

// TestUpdateOrganization tests a partial update leaving the slug untouched
func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Main Branch",
		Slug:      "main-branch",
	}
	newName := "Head Office"

	suite.mockRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Organization) error {
			suite.Equal("Head Office", updated.Name)
			suite.Equal("main-branch", updated.Slug)
			return nil
		}).
		Times(1)

	response, err := suite.orgService.Update(org.ID, &service.UpdateOrganizationRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Head Office", response.Name)
}

// TestGetAllOrganizations tests listing branches
func (suite *OrganizationServiceTestSuite) TestGetAllOrganizations() {
	suite.mockRepo.EXPECT().
		GetAll().
		Return([]models.Organization{{Slug: "main-branch"}, {Slug: "second-branch"}}, nil).
		Times(1)

	responses, err := suite.orgService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
