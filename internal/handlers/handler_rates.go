package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
	"github.com/kicky1/dashboard/internal/middleware"
	"github.com/kicky1/dashboard/internal/utils"
)

// rateHandler serves exchange rate lookups and conversions.
type rateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newRateHandler(rs portssvc.ExchangeRateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:from/:to", h.getRate)
		rates.POST("/convert", h.convertAmount)
		rates.POST("/refresh", h.refreshRates)
	}
}

// getRate godoc
// @Summary Get an exchange rate
// @Description Returns the conversion factor between two supported
// @Description currencies, refreshing the cache when stale.
// @Tags rates
// @Produce json
// @Param from path string true "Source currency"
// @Param to path string true "Target currency"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := domain.Currency(c.Param("from"))
	to := domain.Currency(c.Param("to"))

	rate, err := h.rateService.GetRate(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		From:        from.String(),
		To:          to.String(),
		Rate:        rate,
		Stale:       h.rateService.IsStale(),
		LastUpdated: h.rateService.LastUpdateTime(),
	})
}

// convertAmount godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the current rate and returns the
// @Description locale-formatted rendering alongside the raw value.
// @Tags rates
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertAmountRequest true "Conversion request"
// @Success 200 {object} dto.ConvertAmountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/convert [post]
func (h *rateHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	to := domain.Currency(req.To)
	converted, rate, err := h.rateService.ConvertAmount(c.Request.Context(), req.Amount, domain.Currency(req.From), to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to convert amount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert amount"})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertAmountResponse{
		Amount:    req.Amount,
		Converted: converted,
		Rate:      rate,
		Formatted: utils.FormatAmount(converted, to),
	})
}

// refreshRates godoc
// @Summary Force a rate refresh
// @Description Discards the freshness window and fetches rates now. Unlike
// @Description implicit refreshes, a fetch failure is reported.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.rateService.ForceRefresh(c.Request.Context()); err != nil {
		logger.Warn("Forced rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh exchange rates"})
		return
	}

	rate, _ := h.rateService.GetCachedRate(domain.CurrencyUSD, domain.CurrencyPLN)
	c.JSON(http.StatusOK, dto.RateResponse{
		From:        domain.CurrencyUSD.String(),
		To:          domain.CurrencyPLN.String(),
		Rate:        rate,
		Stale:       h.rateService.IsStale(),
		LastUpdated: h.rateService.LastUpdateTime(),
	})
}
