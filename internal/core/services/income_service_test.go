package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/core/services"
	"github.com/kicky1/dashboard/internal/dto"
)

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, userID, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncome(ctx context.Context, userID string) ([]domain.Income, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomeByCategory(ctx context.Context, userID, category string) ([]domain.Income, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	args := m.Called(ctx, userID, incomeID)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncomeByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type IncomeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockIncomeRepository
	service  portssvc.IncomeSvcFacade
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockIncomeRepository)
	suite.service = services.NewIncomeService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *IncomeServiceTestSuite) TestCreateIncome_Success() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Title:    "Salary",
		Amount:   decimal.RequireFromString("8400.00"),
		Category: "salary",
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Notes:    "August payout",
	}

	suite.mockRepo.On("SaveIncome", ctx, mock.MatchedBy(func(i domain.Income) bool {
		return i.UserID == "user-1" &&
			i.Title == req.Title &&
			i.Amount.Equal(req.Amount) &&
			i.IncomeID != "" &&
			i.CreatedBy == "user-1"
	})).Return(nil)

	income, err := suite.service.CreateIncome(ctx, "user-1", req)
	suite.NoError(err)
	suite.Require().NotNil(income)
	suite.Equal("Salary", income.Title)
	suite.NotEmpty(income.IncomeID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Title:    "Bad",
		Amount:   decimal.Zero,
		Category: "salary",
		Date:     time.Now(),
	}

	income, err := suite.service.CreateIncome(ctx, "user-1", req)
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(income)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveIncome", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestListIncome_CategoryFilter() {
	ctx := context.Background()
	filtered := []domain.Income{{IncomeID: "i1", Category: "freelance"}}

	suite.mockRepo.On("ListIncomeByCategory", ctx, "user-1", "freelance").Return(filtered, nil)

	income, err := suite.service.ListIncome(ctx, "user-1", "freelance")
	suite.NoError(err)
	suite.Len(income, 1)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListIncome", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Income{
		IncomeID: "i1",
		UserID:   "user-1",
		Title:    "Old title",
		Amount:   decimal.NewFromInt(100),
		Category: "salary",
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
	}
	newAmount := decimal.RequireFromString("150.50")

	suite.mockRepo.On("FindIncomeByID", ctx, "user-1", "i1").Return(existing, nil)
	suite.mockRepo.On("UpdateIncome", ctx, mock.MatchedBy(func(i domain.Income) bool {
		return i.Amount.Equal(newAmount) && i.Title == "Old title"
	})).Return(nil)

	updated, err := suite.service.UpdateIncome(ctx, "user-1", "i1", dto.UpdateIncomeRequest{Amount: &newAmount})
	suite.NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	// Untouched fields keep their values.
	suite.Equal("salary", updated.Category)
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_RejectsNonPositiveAmount() {
	ctx := context.Background()
	existing := &domain.Income{IncomeID: "i1", UserID: "user-1", Amount: decimal.NewFromInt(100)}
	negative := decimal.NewFromInt(-1)

	suite.mockRepo.On("FindIncomeByID", ctx, "user-1", "i1").Return(existing, nil)

	updated, err := suite.service.UpdateIncome(ctx, "user-1", "i1", dto.UpdateIncomeRequest{Amount: &negative})
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateIncome", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestDeleteIncome() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteIncome", ctx, "user-1", "i1").Return(nil)

	suite.NoError(suite.service.DeleteIncome(ctx, "user-1", "i1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
