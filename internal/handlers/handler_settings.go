package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
)

// settingsHandler serves the dashboard widget configuration and controls the
// demo simulation.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to dashboard settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/dashboard-settings")
	{
		settings.GET("", h.getSettings)
		settings.GET("/simulation", h.getSimulationStatus)
		settings.POST("/simulation/start", h.startSimulation)
		settings.POST("/simulation/stop", h.stopSimulation)
	}
}

// getSettings godoc
// @Summary Get the dashboard settings
// @Description Returns the current widget configuration. The read simulates
// @Description backend latency and honors request cancellation.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.DashboardSettingsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard-settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	settings, err := h.settingsService.GetDashboardSettings(c.Request.Context())
	if err != nil {
		if c.Request.Context().Err() != nil {
			// Client went away while we were simulating latency.
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch dashboard settings"})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardSettingsResponse{Settings: settings})
}

// getSimulationStatus godoc
// @Summary Get the simulation status
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SimulationStatusResponse
// @Security BearerAuth
// @Router /dashboard-settings/simulation [get]
func (h *settingsHandler) getSimulationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SimulationStatusResponse{Running: h.settingsService.IsSimulationRunning()})
}

// startSimulation godoc
// @Summary Start the settings simulation
// @Description Starts the timer that swaps the dashboard settings between
// @Description presets. Fast mode ticks every 30 seconds, normal every 5 minutes.
// @Tags settings
// @Accept json
// @Produce json
// @Param options body dto.StartSimulationRequest false "Simulation cadence"
// @Success 200 {object} dto.SimulationStatusResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard-settings/simulation/start [post]
func (h *settingsHandler) startSimulation(c *gin.Context) {
	var req dto.StartSimulationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	h.settingsService.StartSimulation(req.Fast)
	c.JSON(http.StatusOK, dto.SimulationStatusResponse{Running: true})
}

// stopSimulation godoc
// @Summary Stop the settings simulation
// @Description Stops the timer and resets the settings to defaults.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SimulationStatusResponse
// @Security BearerAuth
// @Router /dashboard-settings/simulation/stop [post]
func (h *settingsHandler) stopSimulation(c *gin.Context) {
	h.settingsService.StopSimulation()
	c.JSON(http.StatusOK, dto.SimulationStatusResponse{Running: false})
}
