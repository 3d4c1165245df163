package services

import (
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/platform/config"
)

// NewServiceContainer creates the service container with properly wired
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRateSvc = NewExchangeRateService(
		WithRatesEndpoint(cfg.RatesEndpoint),
		WithCacheDuration(cfg.RatesCacheDuration),
		WithFetchTimeout(cfg.RatesFetchTimeout),
	)
	container.SettingsSvc = NewSettingsService()

	container.ExpenseSvc = NewExpenseService(repos.ExpenseRepo)
	container.IncomeSvc = NewIncomeService(repos.IncomeRepo)
	container.DashboardSvc = NewDashboardService(
		container.ExpenseSvc,
		container.IncomeSvc,
		container.ExchangeRateSvc,
		container.SettingsSvc,
	)

	container.UserSvc = NewUserService(repos.UserRepo, repos.PreferencesRepo, repos.ExpenseRepo)
	container.PreferencesSvc = NewPreferencesService(repos.PreferencesRepo)
	container.TokenSvc = NewTokenService(cfg, container.UserSvc)
	container.GoogleOAuthSvc = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
	_ portssvc.IncomeSvcFacade       = (*incomeService)(nil)
	_ portssvc.DashboardSvcFacade    = (*dashboardService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.PreferencesSvcFacade  = (*preferencesService)(nil)
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
)
