package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/core/services"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/utils"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock OrganizationSvcFacade ---

type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) CreateOrganization(ctx context.Context, name, creatorUserID string) (*domain.Organization, error) {
	args := m.Called(ctx, name, creatorUserID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

// --- Test Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockOrgSvc   *MockOrganizationService
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrgSvc = new(MockOrganizationService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockOrgSvc)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegisterUser_JoinsExistingOrganization() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOrgSvc.On("GetOrganizationByID", suite.ctx, "org-1").Return(&domain.Organization{OrganizationID: "org-1"}, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ana" && u.OrganizationID == "org-1"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(suite.ctx, dto.RegisterRequest{
		Username:       "ana",
		Password:       "sup3rsecret",
		Name:           "Ana Gomez",
		Role:           domain.RoleDoctor,
		OrganizationID: "org-1",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("sup3rsecret", user.PasswordHash)
	suite.True(utils.CheckPasswordHash("sup3rsecret", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockOrgSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_CreatesOrganizationByName() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOrgSvc.On("CreateOrganization", suite.ctx, "Clinica Sol", mock.Anything).
		Return(&domain.Organization{OrganizationID: "org-new", Name: "Clinica Sol"}, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.OrganizationID == "org-new"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(suite.ctx, dto.RegisterRequest{
		Username:         "ana",
		Password:         "sup3rsecret",
		Name:             "Ana Gomez",
		Role:             domain.RoleOrganization,
		OrganizationName: "Clinica Sol",
	})

	suite.Require().NoError(err)
	suite.Equal("org-new", user.OrganizationID)
	suite.mockOrgSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_RejectsDuplicateUsername() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ana").
		Return(&domain.User{UserID: "u1", Username: "ana"}, nil).Once()

	_, err := suite.service.RegisterUser(suite.ctx, dto.RegisterRequest{
		Username:       "ana",
		Password:       "sup3rsecret",
		Name:           "Ana Gomez",
		Role:           domain.RoleDoctor,
		OrganizationID: "org-1",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_RequiresExactlyOneOrganizationField() {
	_, err := suite.service.RegisterUser(suite.ctx, dto.RegisterRequest{
		Username: "ana",
		Password: "sup3rsecret",
		Name:     "Ana Gomez",
		Role:     domain.RoleDoctor,
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RegisterUser(suite.ctx, dto.RegisterRequest{
		Username:         "ana",
		Password:         "sup3rsecret",
		Name:             "Ana Gomez",
		Role:             domain.RoleDoctor,
		OrganizationID:   "org-1",
		OrganizationName: "Clinica Sol",
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
