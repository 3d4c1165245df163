package services

import (
	"context"

	"github.com/kicky1/dashboard/internal/core/domain"
)

// DashboardSvcFacade aggregates the user's transactions into dashboard views.
type DashboardSvcFacade interface {
	// GetDashboardData computes totals and the settings-gated recency slices,
	// projected into the display currency. All-or-nothing: any underlying
	// fetch failure fails the whole call.
	GetDashboardData(ctx context.Context, userID string, currency domain.Currency) (*domain.DashboardData, error)

	// GetDashboardSummary computes only the three totals.
	GetDashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error)

	// GetRecentExpenses returns the most recent expenses; limit 0 means
	// "use the configured settings limit".
	GetRecentExpenses(ctx context.Context, userID string, limit int) ([]domain.Expense, error)

	// GetRecentIncome returns the most recent income records.
	GetRecentIncome(ctx context.Context, userID string, limit int) ([]domain.Income, error)
}

// SettingsSvcFacade serves the dashboard widget configuration and controls
// the demo simulation that mutates it on a timer.
type SettingsSvcFacade interface {
	GetDashboardSettings(ctx context.Context) (domain.DashboardSettings, error)
	StartSimulation(fast bool)
	StopSimulation()
	IsSimulationRunning() bool
}
