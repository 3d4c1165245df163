package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kicky1/dashboard/internal/apperrors"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
	"github.com/kicky1/dashboard/internal/middleware"
)

// incomeHandler handles HTTP requests related to income records.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

// RegisterIncomeRoutes registers routes related to income.
func RegisterIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listIncome)
		income.GET("/:id", h.getIncome)
		income.PUT("/:id", h.updateIncome)
		income.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Create a new income record
// @Tags income
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create income"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncome godoc
// @Summary List income records
// @Description Lists the logged-in user's income, newest first. Accepts an
// @Description optional category filter.
// @Tags income
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} dto.IncomeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income [get]
func (h *incomeHandler) listIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListIncomeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	income, err := h.incomeService.ListIncome(c.Request.Context(), userID, params.Category)
	if err != nil {
		logger.Error("Failed to list income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list income"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncomeResponse(income))
}

// getIncome godoc
// @Summary Get an income record by ID
// @Tags income
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} dto.IncomeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	income, err := h.incomeService.GetIncome(c.Request.Context(), userID, incomeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Income not found"})
			return
		}
		logger.Error("Failed to get income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve income"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

// updateIncome godoc
// @Summary Update an income record
// @Tags income
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param income body dto.UpdateIncomeRequest true "Fields to update"
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), userID, incomeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Income not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update income"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

// deleteIncome godoc
// @Summary Delete an income record
// @Tags income
// @Param id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), userID, incomeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Income not found"})
			return
		}
		logger.Error("Failed to delete income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete income"})
		return
	}

	c.Status(http.StatusNoContent)
}
