package dto

import (
	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardQueryParams defines query parameters for dashboard endpoints.
type DashboardQueryParams struct {
	Currency string `form:"currency" binding:"omitempty,currency"`
}

// RecentQueryParams defines query parameters for the recent-transaction endpoints.
type RecentQueryParams struct {
	Limit int `form:"limit,default=0" binding:"omitempty,min=0"`
}

// DashboardDataResponse is the aggregated dashboard payload.
type DashboardDataResponse struct {
	TotalBalance   decimal.Decimal   `json:"totalBalance"`
	TotalIncome    decimal.Decimal   `json:"totalIncome"`
	TotalExpenses  decimal.Decimal   `json:"totalExpenses"`
	RecentExpenses []ExpenseResponse `json:"recentExpenses"`
	RecentIncome   []IncomeResponse  `json:"recentIncome"`
	Currency       string            `json:"currency"`
	Rate           decimal.Decimal   `json:"rate"`
	RateError      string            `json:"rateError,omitempty"`
}

// DashboardSummaryResponse carries only the three totals.
type DashboardSummaryResponse struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// ToDashboardDataResponse converts domain.DashboardData to its response DTO.
func ToDashboardDataResponse(d *domain.DashboardData) DashboardDataResponse {
	recentExpenses := make([]ExpenseResponse, len(d.RecentExpenses))
	for i, e := range d.RecentExpenses {
		recentExpenses[i] = ToConvertedExpenseResponse(e)
	}
	recentIncome := make([]IncomeResponse, len(d.RecentIncome))
	for i, in := range d.RecentIncome {
		recentIncome[i] = ToConvertedIncomeResponse(in)
	}
	return DashboardDataResponse{
		TotalBalance:   d.TotalBalance,
		TotalIncome:    d.TotalIncome,
		TotalExpenses:  d.TotalExpenses,
		RecentExpenses: recentExpenses,
		RecentIncome:   recentIncome,
		Currency:       d.Currency.String(),
		Rate:           d.Rate,
		RateError:      d.RateError,
	}
}

// ToDashboardSummaryResponse converts domain.DashboardSummary to its response DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalBalance:  s.TotalBalance,
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
	}
}
