package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
	"github.com/kicky1/dashboard/internal/middleware"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard views.
type dashboardHandler struct {
	dashboardService   portssvc.DashboardSvcFacade
	preferencesService portssvc.PreferencesSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade, ps portssvc.PreferencesSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService:   ds,
		preferencesService: ps,
	}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, preferencesService portssvc.PreferencesSvcFacade) {
	h := newDashboardHandler(dashboardService, preferencesService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboardData)
		dashboard.GET("/summary", h.getDashboardSummary)
		dashboard.GET("/recent-expenses", h.getRecentExpenses)
		dashboard.GET("/recent-income", h.getRecentIncome)
	}
}

// resolveDisplayCurrency picks the display currency: explicit query param
// first, then the user's preferred currency, then USD.
func (h *dashboardHandler) resolveDisplayCurrency(c *gin.Context, userID, queried string) domain.Currency {
	if queried != "" {
		return domain.Currency(queried)
	}
	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to load preferences for currency resolution", slog.String("error", err.Error()))
		return domain.CurrencyUSD
	}
	return prefs.Currency
}

// getDashboardData godoc
// @Summary Get aggregated dashboard data
// @Description Returns totals and the recent-transaction slices, projected
// @Description into the display currency.
// @Tags dashboard
// @Produce json
// @Param currency query string false "Display currency (USD or PLN)"
// @Success 200 {object} dto.DashboardDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboardData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.DashboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid currency parameter"})
		return
	}

	currency := h.resolveDisplayCurrency(c, userID, params.Currency)

	data, err := h.dashboardService.GetDashboardData(c.Request.Context(), userID, currency)
	if err != nil {
		logger.Error("Failed to build dashboard data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardDataResponse(data))
}

// getDashboardSummary godoc
// @Summary Get the dashboard totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.dashboardService.GetDashboardSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// getRecentExpenses godoc
// @Summary Get the most recent expenses
// @Description Limit 0 (or omitted) uses the configured settings limit.
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of records"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent-expenses [get]
func (h *dashboardHandler) getRecentExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.RecentQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	expenses, err := h.dashboardService.GetRecentExpenses(c.Request.Context(), userID, params.Limit)
	if err != nil {
		logger.Error("Failed to fetch recent expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch recent expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getRecentIncome godoc
// @Summary Get the most recent income records
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of records"
// @Success 200 {array} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent-income [get]
func (h *dashboardHandler) getRecentIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.RecentQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	income, err := h.dashboardService.GetRecentIncome(c.Request.Context(), userID, params.Limit)
	if err != nil {
		logger.Error("Failed to fetch recent income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch recent income"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncomeResponse(income))
}
