package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
	"github.com/kicky1/dashboard/internal/handlers"
	"github.com/kicky1/dashboard/internal/middleware"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, userID, category string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *MockExpenseService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ExpenseHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dashboard-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockExpenseService = new(MockExpenseService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExpenseRoutes(v1, suite.mockExpenseService)
}

func (suite *ExpenseHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	userID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	reqBody := dto.CreateExpenseRequest{
		Title:    "Groceries",
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		Date:     now,
	}
	created := &domain.Expense{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		Title:     reqBody.Title,
		Amount:    reqBody.Amount,
		Category:  reqBody.Category,
		Date:      reqBody.Date,
	}

	suite.mockExpenseService.On("CreateExpense",
		mock.Anything,
		userID,
		mock.MatchedBy(func(r dto.CreateExpenseRequest) bool {
			return r.Title == reqBody.Title && r.Amount.Equal(reqBody.Amount)
		}),
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/expenses", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ExpenseResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ExpenseID, resp.ExpenseID)
	suite.True(resp.Amount.Equal(reqBody.Amount))

	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_ValidationError() {
	userID := uuid.NewString()

	reqBody := dto.CreateExpenseRequest{
		Title:    "Refund",
		Amount:   decimal.NewFromInt(-5),
		Category: "Food",
		Date:     time.Now(),
	}

	suite.mockExpenseService.On("CreateExpense", mock.Anything, userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/expenses", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense")
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_CategoryFilter() {
	userID := uuid.NewString()
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), UserID: userID, Title: "Bus ticket", Amount: decimal.NewFromInt(3), Category: "Transport", Date: time.Now()},
	}

	suite.mockExpenseService.On("ListExpenses", mock.Anything, userID, "Transport").
		Return(expenses, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/expenses?category=Transport", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ExpenseResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(expenses[0].ExpenseID, resp[0].ExpenseID)

	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	userID := uuid.NewString()
	expenseID := uuid.NewString()

	suite.mockExpenseService.On("GetExpense", mock.Anything, userID, expenseID).
		Return(nil, apperrors.NewNotFoundError("expense not found")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/expenses/"+expenseID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestUpdateExpense_Success() {
	userID := uuid.NewString()
	expenseID := uuid.NewString()
	newTitle := "Dinner out"

	updated := &domain.Expense{
		ExpenseID: expenseID,
		UserID:    userID,
		Title:     newTitle,
		Amount:    decimal.NewFromInt(60),
		Category:  "Food",
		Date:      time.Now(),
	}

	suite.mockExpenseService.On("UpdateExpense",
		mock.Anything,
		userID,
		expenseID,
		mock.MatchedBy(func(r dto.UpdateExpenseRequest) bool {
			return r.Title != nil && *r.Title == newTitle && r.Amount == nil
		}),
	).Return(updated, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/expenses/"+expenseID, userID, dto.UpdateExpenseRequest{Title: &newTitle})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ExpenseResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(newTitle, resp.Title)

	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_Success() {
	userID := uuid.NewString()
	expenseID := uuid.NewString()

	suite.mockExpenseService.On("DeleteExpense", mock.Anything, userID, expenseID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/expenses/"+expenseID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
