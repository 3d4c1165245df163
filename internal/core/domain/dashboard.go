package domain

import "github.com/shopspring/decimal"

// DashboardData is the aggregated view the dashboard screen renders:
// totals over the full transaction set plus recency-limited slices,
// projected into the requested display currency.
type DashboardData struct {
	TotalBalance   decimal.Decimal    `json:"totalBalance"`
	TotalIncome    decimal.Decimal    `json:"totalIncome"`
	TotalExpenses  decimal.Decimal    `json:"totalExpenses"`
	RecentExpenses []ConvertedExpense `json:"recentExpenses"`
	RecentIncome   []ConvertedIncome  `json:"recentIncome"`

	Currency Currency        `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
	// RateError carries the rate lookup failure, if any. When set, amounts
	// are reported unconverted (rate 1) so the dashboard can still render.
	RateError string `json:"rateError,omitempty"`
}

// DashboardSummary holds only the three totals.
type DashboardSummary struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}
