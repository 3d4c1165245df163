package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
)

const (
	defaultSettingsReadDelay = 300 * time.Millisecond
	fastSimulationInterval   = 30 * time.Second
	normalSimulationInterval = 5 * time.Minute
)

// settingsPresets are the alternative widget configurations the simulation
// cycles through. The pinned fields are overwritten after every pick, so a
// preset value for those never shows through.
var settingsPresets = []domain.DashboardSettings{
	{
		ShowTotalBalance:      true,
		ShowIncome:            true,
		ShowExpenses:          true,
		ShowRecentExpenses:    true,
		ShowRecentIncome:      true,
		RecentExpensesLimit:   4,
		RecentIncomeLimit:     3,
		ShowUserHeader:        true,
		ShowBalanceCard:       true,
		ShowCurrencyConverter: true,
		ShowQuickActions:      true,
		ShowCharts:            true,
		DashboardTitle:        "Full Dashboard",
		WelcomeMessage:        "Everything at a glance",
		EnableNotifications:   true,
		EnableDarkMode:        true,
		EnableAnimations:      true,
	},
	{
		ShowTotalBalance:      true,
		ShowIncome:            false,
		ShowExpenses:          true,
		ShowRecentExpenses:    true,
		ShowRecentIncome:      false,
		RecentExpensesLimit:   4,
		RecentIncomeLimit:     3,
		ShowUserHeader:        false,
		ShowBalanceCard:       true,
		ShowCurrencyConverter: false,
		ShowQuickActions:      false,
		ShowCharts:            false,
		DashboardTitle:        "Minimal Dashboard",
		WelcomeMessage:        "Just the essentials",
		EnableNotifications:   true,
		EnableDarkMode:        true,
		EnableAnimations:      true,
	},
}

// settingsService serves the dashboard widget configuration from memory and
// runs the demo simulation that swaps it between presets on a timer. No real
// backend stores these settings.
type settingsService struct {
	mu       sync.Mutex
	settings domain.DashboardSettings

	// Simulation state. stopCh belongs to the currently running loop;
	// closing it is the only way that loop exits.
	running       bool
	stopCh        chan struct{}
	lastPresetIdx int

	readDelay      time.Duration
	fastInterval   time.Duration
	normalInterval time.Duration
	rng            *rand.Rand
}

// SettingsServiceOption configures a settingsService.
type SettingsServiceOption func(*settingsService)

// WithSettingsReadDelay overrides the simulated read latency.
func WithSettingsReadDelay(d time.Duration) SettingsServiceOption {
	return func(s *settingsService) {
		s.readDelay = d
	}
}

// WithSimulationIntervals overrides the fast and normal tick cadences.
func WithSimulationIntervals(fast, normal time.Duration) SettingsServiceOption {
	return func(s *settingsService) {
		s.fastInterval = fast
		s.normalInterval = normal
	}
}

// NewSettingsService creates a settings service holding the default
// configuration with no simulation running.
func NewSettingsService(opts ...SettingsServiceOption) portssvc.SettingsSvcFacade {
	s := &settingsService{
		settings:       domain.DefaultDashboardSettings(),
		lastPresetIdx:  -1,
		readDelay:      defaultSettingsReadDelay,
		fastInterval:   fastSimulationInterval,
		normalInterval: normalSimulationInterval,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetDashboardSettings returns the current configuration after a simulated
// backend latency. The delay respects context cancellation.
func (s *settingsService) GetDashboardSettings(ctx context.Context) (domain.DashboardSettings, error) {
	if s.readDelay > 0 {
		timer := time.NewTimer(s.readDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.DashboardSettings{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

// StartSimulation begins swapping the settings between presets on a timer.
// Starting while already running restarts the loop with the new cadence.
func (s *settingsService) StartSimulation(fast bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopCh)
	}

	interval := s.normalInterval
	if fast {
		interval = s.fastInterval
	}

	stopCh := make(chan struct{})
	s.stopCh = stopCh
	s.running = true

	go s.simulationLoop(interval, stopCh)
}

// StopSimulation halts the running loop and resets the configuration to the
// defaults. A no-op when nothing is running.
func (s *settingsService) StopSimulation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopCh)
	s.stopCh = nil
	s.running = false
	s.settings = domain.DefaultDashboardSettings()
	s.lastPresetIdx = -1
}

// IsSimulationRunning reports whether the simulation loop is active.
func (s *settingsService) IsSimulationRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *settingsService) simulationLoop(interval time.Duration, stopCh chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.applyRandomPreset(stopCh)
		}
	}
}

// applyRandomPreset installs a preset that differs from the last pick, then
// forces the pinned fields back on. Ignored when the loop owning stopCh has
// already been replaced or stopped.
func (s *settingsService) applyRandomPreset(stopCh chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.stopCh != stopCh {
		return
	}

	idx := s.rng.Intn(len(settingsPresets))
	if idx == s.lastPresetIdx {
		idx = (idx + 1) % len(settingsPresets)
	}
	s.lastPresetIdx = idx

	next := settingsPresets[idx]
	next.EnableNotifications = true
	next.EnableDarkMode = true
	next.EnableAnimations = true
	next.RecentExpensesLimit = 4
	s.settings = next
}
