package domain

// DashboardSettings controls which dashboard widgets are visible and how many
// recent transactions each list shows. Served by the in-memory settings
// service; no real backend stores these.
type DashboardSettings struct {
	// General settings
	ShowTotalBalance bool `json:"showTotalBalance"`
	ShowIncome       bool `json:"showIncome"`
	ShowExpenses     bool `json:"showExpenses"`

	// Recent items settings
	ShowRecentExpenses  bool `json:"showRecentExpenses"`
	ShowRecentIncome    bool `json:"showRecentIncome"`
	RecentExpensesLimit int  `json:"recentExpensesLimit"`
	RecentIncomeLimit   int  `json:"recentIncomeLimit"`

	// Layout settings
	ShowUserHeader  bool `json:"showUserHeader"`
	ShowBalanceCard bool `json:"showBalanceCard"`

	// Additional features
	ShowCurrencyConverter bool `json:"showCurrencyConverter"`
	ShowQuickActions      bool `json:"showQuickActions"`
	ShowCharts            bool `json:"showCharts"`

	// Customization
	DashboardTitle string `json:"dashboardTitle"`
	WelcomeMessage string `json:"welcomeMessage"`

	// Feature toggles
	EnableNotifications bool `json:"enableNotifications"`
	EnableDarkMode      bool `json:"enableDarkMode"`
	EnableAnimations    bool `json:"enableAnimations"`
}

// DefaultDashboardSettings returns the initial widget configuration.
func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		ShowTotalBalance:      true,
		ShowIncome:            true,
		ShowExpenses:          true,
		ShowRecentExpenses:    true,
		ShowRecentIncome:      false,
		RecentExpensesLimit:   4,
		RecentIncomeLimit:     3,
		ShowUserHeader:        true,
		ShowBalanceCard:       true,
		ShowCurrencyConverter: true,
		ShowQuickActions:      false,
		ShowCharts:            true,
		DashboardTitle:        "Dashboard",
		WelcomeMessage:        "Welcome back!",
		EnableNotifications:   true,
		EnableDarkMode:        true,
		EnableAnimations:      true,
	}
}
