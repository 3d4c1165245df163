package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/core/services"
	"github.com/kicky1/dashboard/internal/dto"
)

// --- Mock ExpenseSvcFacade ---
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

// --- Mock IncomeSvcFacade ---
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

// --- Mock ExchangeRateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateReader) GetMultipleRates(ctx context.Context, from domain.Currency, to []domain.Currency) (map[domain.Currency]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Currency]decimal.Decimal), args.Error(1)
}

func (m *MockRateReader) ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock SettingsSvcFacade ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetDashboardSettings(ctx context.Context) (domain.DashboardSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardSettings), args.Error(1)
}

func (m *MockSettingsService) StartSimulation(fast bool) {
	m.Called(fast)
}

func (m *MockSettingsService) StopSimulation() {
	m.Called()
}

func (m *MockSettingsService) IsSimulationRunning() bool {
	args := m.Called()
	return args.Bool(0)
}

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockExpenseSvc  *MockExpenseService
	mockIncomeSvc   *MockIncomeService
	mockRateSvc     *MockRateReader
	mockSettingsSvc *MockSettingsService
	service         portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockExpenseSvc = new(MockExpenseService)
	suite.mockIncomeSvc = new(MockIncomeService)
	suite.mockRateSvc = new(MockRateReader)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.service = services.NewDashboardService(
		suite.mockExpenseSvc,
		suite.mockIncomeSvc,
		suite.mockRateSvc,
		suite.mockSettingsSvc,
	)
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func expenseAt(id string, amount string, date time.Time, created time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID: id,
		UserID:    "user-1",
		Title:     "expense " + id,
		Amount:    decimal.RequireFromString(amount),
		Category:  "other",
		Date:      date,
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			LastUpdatedAt: created,
		},
	}
}

func incomeAt(id string, amount string, date time.Time, created time.Time) domain.Income {
	return domain.Income{
		IncomeID: id,
		UserID:   "user-1",
		Title:    "income " + id,
		Amount:   decimal.RequireFromString(amount),
		Category: "salary",
		Date:     date,
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			LastUpdatedAt: created,
		},
	}
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetDashboardData_USDTotals() {
	ctx := context.Background()
	expenses := []domain.Expense{
		expenseAt("e1", "30", day(10), day(10)),
		expenseAt("e2", "20", day(12), day(12)),
	}
	income := []domain.Income{
		incomeAt("i1", "200", day(1), day(1)),
	}
	settings := domain.DefaultDashboardSettings()

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)
	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyUSD)
	suite.NoError(err)
	suite.True(data.TotalExpenses.Equal(decimal.NewFromInt(50)))
	suite.True(data.TotalIncome.Equal(decimal.NewFromInt(200)))
	suite.True(data.TotalBalance.Equal(decimal.NewFromInt(150)))
	suite.True(data.Rate.Equal(decimal.NewFromInt(1)))
	suite.Empty(data.RateError)
	suite.Equal(domain.CurrencyUSD, data.Currency)

	// USD display never consults the rate service.
	suite.mockRateSvc.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_ConvertsToPLN() {
	ctx := context.Background()
	expenses := []domain.Expense{expenseAt("e1", "10", day(10), day(10))}
	income := []domain.Income{incomeAt("i1", "100", day(1), day(1))}
	settings := domain.DefaultDashboardSettings()
	rate := decimal.RequireFromString("4.00")

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)
	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)
	suite.mockRateSvc.On("GetRate", mock.Anything, domain.CurrencyUSD, domain.CurrencyPLN).Return(rate, nil)

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(data.TotalExpenses.Equal(decimal.NewFromInt(40)))
	suite.True(data.TotalIncome.Equal(decimal.NewFromInt(400)))
	suite.True(data.TotalBalance.Equal(decimal.NewFromInt(360)))
	suite.Require().Len(data.RecentExpenses, 1)
	suite.True(data.RecentExpenses[0].ConvertedAmount.Equal(decimal.NewFromInt(40)))
	// The stored amount stays in USD alongside the projection.
	suite.True(data.RecentExpenses[0].Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_RateFailureDegradesToUnconverted() {
	ctx := context.Background()
	expenses := []domain.Expense{expenseAt("e1", "10", day(10), day(10))}
	income := []domain.Income{incomeAt("i1", "100", day(1), day(1))}
	settings := domain.DefaultDashboardSettings()

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)
	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)
	suite.mockRateSvc.On("GetRate", mock.Anything, domain.CurrencyUSD, domain.CurrencyPLN).
		Return(decimal.Decimal{}, errors.New("rates API unreachable"))

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyPLN)
	suite.NoError(err)
	suite.NotEmpty(data.RateError)
	suite.True(data.Rate.Equal(decimal.NewFromInt(1)))
	suite.True(data.TotalIncome.Equal(decimal.NewFromInt(100)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_RecencyOrderAndLimits() {
	ctx := context.Background()
	sameDay := day(15)
	expenses := []domain.Expense{
		expenseAt("e1", "1", day(1), day(1)),
		expenseAt("e2", "1", day(20), day(20)),
		// Same date, later creation wins the tie.
		expenseAt("e3", "1", sameDay, sameDay.Add(2*time.Hour)),
		expenseAt("e4", "1", sameDay, sameDay.Add(1*time.Hour)),
		// Same date and creation time, higher ID wins.
		expenseAt("e5", "1", day(18), day(18)),
		expenseAt("e6", "1", day(18), day(18)),
	}
	settings := domain.DefaultDashboardSettings()
	settings.RecentExpensesLimit = 4

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return([]domain.Income{}, nil)
	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyUSD)
	suite.NoError(err)
	suite.Require().Len(data.RecentExpenses, 4)
	suite.Equal("e2", data.RecentExpenses[0].ExpenseID)
	suite.Equal("e6", data.RecentExpenses[1].ExpenseID)
	suite.Equal("e5", data.RecentExpenses[2].ExpenseID)
	suite.Equal("e3", data.RecentExpenses[3].ExpenseID)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_HiddenSectionsStayEmpty() {
	ctx := context.Background()
	expenses := []domain.Expense{expenseAt("e1", "10", day(10), day(10))}
	income := []domain.Income{incomeAt("i1", "100", day(1), day(1))}
	settings := domain.DefaultDashboardSettings()
	settings.ShowRecentExpenses = false
	settings.ShowRecentIncome = false

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)
	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyUSD)
	suite.NoError(err)
	suite.Empty(data.RecentExpenses)
	suite.Empty(data.RecentIncome)
	// Totals still cover the full transaction set.
	suite.True(data.TotalBalance.Equal(decimal.NewFromInt(90)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_FetchFailureFailsWholeCall() {
	ctx := context.Background()

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").
		Return(nil, errors.New("connection refused"))
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").
		Return([]domain.Income{}, nil).Maybe()

	data, err := suite.service.GetDashboardData(ctx, "user-1", domain.CurrencyUSD)
	suite.Error(err)
	suite.Nil(data)
	suite.Contains(err.Error(), "failed to fetch dashboard data")
}

func (suite *DashboardServiceTestSuite) TestGetRecentExpenses_ZeroLimitUsesSettings() {
	ctx := context.Background()
	expenses := []domain.Expense{
		expenseAt("e1", "1", day(1), day(1)),
		expenseAt("e2", "1", day(2), day(2)),
		expenseAt("e3", "1", day(3), day(3)),
	}
	settings := domain.DefaultDashboardSettings()
	settings.RecentExpensesLimit = 2

	suite.mockSettingsSvc.On("GetDashboardSettings", mock.Anything).Return(settings, nil)
	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)

	recent, err := suite.service.GetRecentExpenses(ctx, "user-1", 0)
	suite.NoError(err)
	suite.Require().Len(recent, 2)
	suite.Equal("e3", recent[0].ExpenseID)
	suite.Equal("e2", recent[1].ExpenseID)
}

func (suite *DashboardServiceTestSuite) TestGetRecentIncome_ExplicitLimitSkipsSettings() {
	ctx := context.Background()
	income := []domain.Income{
		incomeAt("i1", "1", day(1), day(1)),
		incomeAt("i2", "1", day(2), day(2)),
	}

	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)

	recent, err := suite.service.GetRecentIncome(ctx, "user-1", 1)
	suite.NoError(err)
	suite.Require().Len(recent, 1)
	suite.Equal("i2", recent[0].IncomeID)
	suite.mockSettingsSvc.AssertNotCalled(suite.T(), "GetDashboardSettings", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardSummary() {
	ctx := context.Background()
	expenses := []domain.Expense{expenseAt("e1", "75.50", day(10), day(10))}
	income := []domain.Income{incomeAt("i1", "100", day(1), day(1))}

	suite.mockExpenseSvc.On("ListExpenses", mock.Anything, "user-1", "").Return(expenses, nil)
	suite.mockIncomeSvc.On("ListIncome", mock.Anything, "user-1", "").Return(income, nil)

	summary, err := suite.service.GetDashboardSummary(ctx, "user-1")
	suite.NoError(err)
	suite.True(summary.TotalBalance.Equal(decimal.RequireFromString("24.50")))
	// Summary needs no settings and no rate.
	suite.mockSettingsSvc.AssertNotCalled(suite.T(), "GetDashboardSettings", mock.Anything)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
