package dto

import "github.com/kicky1/dashboard/internal/core/domain"

// StartSimulationRequest selects the simulation cadence.
type StartSimulationRequest struct {
	Fast bool `json:"fast"`
}

// SimulationStatusResponse reports whether the settings simulation is running.
type SimulationStatusResponse struct {
	Running bool `json:"running"`
}

// DashboardSettingsResponse wraps the current widget configuration.
type DashboardSettingsResponse struct {
	Settings domain.DashboardSettings `json:"settings"`
}
