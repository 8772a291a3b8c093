package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockGoogleAuthService is a mock type for the GoogleAuthSvcFacade interface
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

func (m *MockGoogleAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockGoogle *MockGoogleAuthService
	service    *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockGoogle = new(MockGoogleAuthService)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockGoogle)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Mario", Email: "mario@example.com", Password: "hunter2hunter2"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_EmailTaken() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Mario", Email: "mario@example.com", Password: "hunter2hunter2"}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter2hunter2")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: uuid.NewString(), Email: "mario@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, existing.Email, "hunter2hunter2")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter2hunter2")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: uuid.NewString(), Email: "mario@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, existing.Email, "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown emails look like bad credentials, not missing resources.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_ExistingByGoogleID() {
	ctx := context.Background()
	googleID := "google-sub-123"
	existing := &domain.User{UserID: uuid.NewString(), GoogleID: googleID}
	payload := &idtoken.Payload{Subject: googleID, Claims: map[string]interface{}{}}

	suite.mockGoogle.On("ValidateGoogleIDToken", ctx, "token").Return(payload, nil).Once()
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(existing, nil).Once()

	user, err := suite.service.AuthenticateGoogleUser(ctx, "token")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_LinksExistingEmail() {
	ctx := context.Background()
	googleID := "google-sub-123"
	existing := &domain.User{UserID: uuid.NewString(), Email: "mario@example.com"}
	payload := &idtoken.Payload{Subject: googleID, Claims: map[string]interface{}{"email": "mario@example.com", "name": "Mario"}}

	suite.mockGoogle.On("ValidateGoogleIDToken", ctx, "token").Return(payload, nil).Once()
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "mario@example.com").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.AuthenticateGoogleUser(ctx, "token")

	suite.Require().NoError(err)
	suite.Equal(googleID, user.GoogleID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_CreatesNewUser() {
	ctx := context.Background()
	googleID := "google-sub-456"
	payload := &idtoken.Payload{Subject: googleID, Claims: map[string]interface{}{"email": "new@example.com", "name": "New User"}}

	suite.mockGoogle.On("ValidateGoogleIDToken", ctx, "token").Return(payload, nil).Once()
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.AuthenticateGoogleUser(ctx, "token")

	suite.Require().NoError(err)
	suite.Equal(googleID, user.GoogleID)
	suite.Equal("new@example.com", user.Email)
	suite.Equal("New User", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_InvalidToken() {
	ctx := context.Background()

	suite.mockGoogle.On("ValidateGoogleIDToken", ctx, "bad").Return(nil, apperrors.ErrUnauthorized).Once()

	user, err := suite.service.AuthenticateGoogleUser(ctx, "bad")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleCode_UsesExchangedIDToken() {
	ctx := context.Background()
	googleID := "google-sub-789"
	existing := &domain.User{UserID: uuid.NewString(), GoogleID: googleID}
	payload := &idtoken.Payload{Subject: googleID, Claims: map[string]interface{}{}}
	token := (&oauth2.Token{AccessToken: "ya29"}).WithExtra(map[string]interface{}{"id_token": "google-id-token"})

	suite.mockGoogle.On("ExchangeCodeForToken", ctx, "auth-code").Return(token, nil).Once()
	suite.mockGoogle.On("ValidateGoogleIDToken", ctx, "google-id-token").Return(payload, nil).Once()
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(existing, nil).Once()

	user, err := suite.service.AuthenticateGoogleCode(ctx, "auth-code")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockGoogle.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleCode_MissingIDToken() {
	ctx := context.Background()
	token := &oauth2.Token{AccessToken: "ya29"}

	suite.mockGoogle.On("ExchangeCodeForToken", ctx, "auth-code").Return(token, nil).Once()

	user, err := suite.service.AuthenticateGoogleCode(ctx, "auth-code")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.mockGoogle.AssertNotCalled(suite.T(), "ValidateGoogleIDToken")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
