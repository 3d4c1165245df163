package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/core/services"
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

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PreferencesRepository ---
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreferences), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockPrefsRepo   *MockPreferencesRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPrefsRepo = new(MockPreferencesRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockPrefsRepo, suite.mockExpenseRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestClearUserData_Success() {
	userID := "user-clear-1"
	suite.mockExpenseRepo.On("DeleteUserTransactions", mock.Anything, userID).Return(nil).Once()

	err := suite.service.ClearUserData(context.Background(), userID)

	suite.NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearUserData_RepoError() {
	userID := "user-clear-2"
	repoErr := errors.New("tx aborted")
	suite.mockExpenseRepo.On("DeleteUserTransactions", mock.Anything, userID).Return(repoErr).Once()

	err := suite.service.ClearUserData(context.Background(), userID)

	suite.Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Contains(err.Error(), "failed to clear transactions")
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	userID := "user-del-1"
	suite.mockUserRepo.On("MarkUserDeleted", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(context.Background(), userID)

	suite.NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
