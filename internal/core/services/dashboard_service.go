package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/utils"
)

// dashboardService aggregates a user's transactions into the dashboard view.
type dashboardService struct {
	expenseSvc  portssvc.ExpenseSvcFacade
	incomeSvc   portssvc.IncomeSvcFacade
	rateSvc     portssvc.ExchangeRateReaderSvc
	settingsSvc portssvc.SettingsSvcFacade
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	expenseSvc portssvc.ExpenseSvcFacade,
	incomeSvc portssvc.IncomeSvcFacade,
	rateSvc portssvc.ExchangeRateReaderSvc,
	settingsSvc portssvc.SettingsSvcFacade,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		expenseSvc:  expenseSvc,
		incomeSvc:   incomeSvc,
		rateSvc:     rateSvc,
		settingsSvc: settingsSvc,
	}
}

// fetchTransactions loads the user's expenses and income in parallel.
// All-or-nothing: either fetch failing fails the whole call.
func (s *dashboardService) fetchTransactions(ctx context.Context, userID string) ([]domain.Expense, []domain.Income, error) {
	var (
		expenses []domain.Expense
		income   []domain.Income
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseSvc.ListExpenses(gctx, userID, "")
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.incomeSvc.ListIncome(gctx, userID, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch dashboard data: %w", err)
	}
	return expenses, income, nil
}

// resolveRate looks up the USD rate for the display currency. A lookup
// failure degrades to rate 1 with the error reported alongside, so the
// dashboard still renders with unconverted amounts.
func (s *dashboardService) resolveRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, string) {
	if currency == domain.CurrencyUSD {
		return decimal.NewFromInt(1), ""
	}
	rate, err := s.rateSvc.GetRate(ctx, domain.CurrencyUSD, currency)
	if err != nil {
		return decimal.NewFromInt(1), err.Error()
	}
	return rate, ""
}

// sortExpensesByRecency orders expenses newest first. Ties on the transaction date
// fall back to creation time, then ID, so the order is stable across calls.
func sortExpensesByRecency(expenses []domain.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		if !expenses[i].CreatedAt.Equal(expenses[j].CreatedAt) {
			return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
		}
		return expenses[i].ExpenseID > expenses[j].ExpenseID
	})
}

func sortIncomeByRecency(income []domain.Income) {
	sort.SliceStable(income, func(i, j int) bool {
		if !income[i].Date.Equal(income[j].Date) {
			return income[i].Date.After(income[j].Date)
		}
		if !income[i].CreatedAt.Equal(income[j].CreatedAt) {
			return income[i].CreatedAt.After(income[j].CreatedAt)
		}
		return income[i].IncomeID > income[j].IncomeID
	})
}

func (s *dashboardService) GetDashboardData(ctx context.Context, userID string, currency domain.Currency) (*domain.DashboardData, error) {
	expenses, income, err := s.fetchTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetDashboardSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard settings: %w", err)
	}

	rate, rateErr := s.resolveRate(ctx, currency)

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	totalIncome := decimal.Zero
	for _, in := range income {
		totalIncome = totalIncome.Add(in.Amount)
	}

	data := &domain.DashboardData{
		TotalIncome:    utils.ConvertWithRate(totalIncome, rate),
		TotalExpenses:  utils.ConvertWithRate(totalExpenses, rate),
		TotalBalance:   utils.ConvertWithRate(totalIncome.Sub(totalExpenses), rate),
		RecentExpenses: []domain.ConvertedExpense{},
		RecentIncome:   []domain.ConvertedIncome{},
		Currency:       currency,
		Rate:           rate,
		RateError:      rateErr,
	}

	if settings.ShowRecentExpenses {
		sortExpensesByRecency(expenses)
		for _, e := range takeExpenses(expenses, settings.RecentExpensesLimit) {
			data.RecentExpenses = append(data.RecentExpenses, utils.ConvertExpense(e, rate))
		}
	}
	if settings.ShowRecentIncome {
		sortIncomeByRecency(income)
		for _, in := range takeIncome(income, settings.RecentIncomeLimit) {
			data.RecentIncome = append(data.RecentIncome, utils.ConvertIncome(in, rate))
		}
	}

	return data, nil
}

func (s *dashboardService) GetDashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	expenses, income, err := s.fetchTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	totalIncome := decimal.Zero
	for _, in := range income {
		totalIncome = totalIncome.Add(in.Amount)
	}

	return &domain.DashboardSummary{
		TotalBalance:  totalIncome.Sub(totalExpenses),
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
	}, nil
}

func (s *dashboardService) GetRecentExpenses(ctx context.Context, userID string, limit int) ([]domain.Expense, error) {
	if limit <= 0 {
		settings, err := s.settingsSvc.GetDashboardSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dashboard settings: %w", err)
		}
		limit = settings.RecentExpensesLimit
	}

	expenses, err := s.expenseSvc.ListExpenses(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent expenses: %w", err)
	}
	sortExpensesByRecency(expenses)
	return takeExpenses(expenses, limit), nil
}

func (s *dashboardService) GetRecentIncome(ctx context.Context, userID string, limit int) ([]domain.Income, error) {
	if limit <= 0 {
		settings, err := s.settingsSvc.GetDashboardSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dashboard settings: %w", err)
		}
		limit = settings.RecentIncomeLimit
	}

	income, err := s.incomeSvc.ListIncome(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent income: %w", err)
	}
	sortIncomeByRecency(income)
	return takeIncome(income, limit), nil
}

func takeExpenses(expenses []domain.Expense, limit int) []domain.Expense {
	if limit < 0 {
		limit = 0
	}
	if len(expenses) > limit {
		return expenses[:limit]
	}
	return expenses
}

func takeIncome(income []domain.Income, limit int) []domain.Income {
	if limit < 0 {
		limit = 0
	}
	if len(income) > limit {
		return income[:limit]
	}
	return income
}
