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

// --- Mock IncomeService ---
type MockIncomeService struct {
	mock.Mock
}

func (m *MockIncomeService) CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockIncomeService) GetIncome(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, userID, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockIncomeService) ListIncome(ctx context.Context, userID, category string) ([]domain.Income, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}
func (m *MockIncomeService) UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	args := m.Called(ctx, userID, incomeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockIncomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	args := m.Called(ctx, userID, incomeID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.IncomeSvcFacade = (*MockIncomeService)(nil)

// --- Test Suite ---
type IncomeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockIncomeService *MockIncomeService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *IncomeHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *IncomeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockIncomeService = new(MockIncomeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterIncomeRoutes(v1, suite.mockIncomeService)
}

func (suite *IncomeHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
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

func (suite *IncomeHandlerTestSuite) TestCreateIncome_Success() {
	userID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	reqBody := dto.CreateIncomeRequest{
		Title:    "Salary",
		Amount:   decimal.NewFromInt(8400),
		Category: "Salary",
		Date:     now,
	}
	created := &domain.Income{
		IncomeID: uuid.NewString(),
		UserID:   userID,
		Title:    reqBody.Title,
		Amount:   reqBody.Amount,
		Category: reqBody.Category,
		Date:     reqBody.Date,
	}

	suite.mockIncomeService.On("CreateIncome",
		mock.Anything,
		userID,
		mock.MatchedBy(func(r dto.CreateIncomeRequest) bool {
			return r.Title == reqBody.Title && r.Amount.Equal(reqBody.Amount)
		}),
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/income", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.IncomeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.IncomeID, resp.IncomeID)
	suite.True(resp.Amount.Equal(reqBody.Amount))

	suite.mockIncomeService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_ValidationError() {
	userID := uuid.NewString()

	reqBody := dto.CreateIncomeRequest{
		Title:    "Chargeback",
		Amount:   decimal.NewFromInt(-100),
		Category: "Salary",
		Date:     time.Now(),
	}

	suite.mockIncomeService.On("CreateIncome", mock.Anything, userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/income", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockIncomeService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/income", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockIncomeService.AssertNotCalled(suite.T(), "CreateIncome")
}

func (suite *IncomeHandlerTestSuite) TestListIncome_CategoryFilter() {
	userID := uuid.NewString()
	income := []domain.Income{
		{IncomeID: uuid.NewString(), UserID: userID, Title: "Contract work", Amount: decimal.NewFromInt(1200), Category: "Freelance", Date: time.Now()},
	}

	suite.mockIncomeService.On("ListIncome", mock.Anything, userID, "Freelance").
		Return(income, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/income?category=Freelance", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.IncomeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(income[0].IncomeID, resp[0].IncomeID)

	suite.mockIncomeService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestGetIncome_NotFound() {
	userID := uuid.NewString()
	incomeID := uuid.NewString()

	suite.mockIncomeService.On("GetIncome", mock.Anything, userID, incomeID).
		Return(nil, apperrors.NewNotFoundError("income not found")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/income/"+incomeID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockIncomeService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestUpdateIncome_Success() {
	userID := uuid.NewString()
	incomeID := uuid.NewString()
	newTitle := "Bonus payout"

	updated := &domain.Income{
		IncomeID: incomeID,
		UserID:   userID,
		Title:    newTitle,
		Amount:   decimal.NewFromInt(500),
		Category: "Salary",
		Date:     time.Now(),
	}

	suite.mockIncomeService.On("UpdateIncome",
		mock.Anything,
		userID,
		incomeID,
		mock.MatchedBy(func(r dto.UpdateIncomeRequest) bool {
			return r.Title != nil && *r.Title == newTitle && r.Amount == nil
		}),
	).Return(updated, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/income/"+incomeID, userID, dto.UpdateIncomeRequest{Title: &newTitle})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.IncomeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(newTitle, resp.Title)

	suite.mockIncomeService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_Success() {
	userID := uuid.NewString()
	incomeID := uuid.NewString()

	suite.mockIncomeService.On("DeleteIncome", mock.Anything, userID, incomeID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/income/"+incomeID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockIncomeService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestIncomeHandler(t *testing.T) {
	suite.Run(t, new(IncomeHandlerTestSuite))
}
