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

// userHandler handles HTTP requests for the logged-in user's account and
// preferences.
type userHandler struct {
	userService        portssvc.UserSvcFacade
	preferencesService portssvc.PreferencesSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ps portssvc.PreferencesSvcFacade) *userHandler {
	return &userHandler{
		userService:        us,
		preferencesService: ps,
	}
}

// registerUserRoutes registers routes related to the current user.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, preferencesService portssvc.PreferencesSvcFacade) {
	h := newUserHandler(userService, preferencesService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)
		users.PUT("/me", h.updateCurrentUser)
		users.DELETE("/me", h.deleteCurrentUser)
		users.POST("/me/clear-data", h.clearUserData)
		users.GET("/me/preferences", h.getPreferences)
		users.PUT("/me/preferences", h.updatePreferences)
	}
}

// getCurrentUser godoc
// @Summary Get the logged-in user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateCurrentUser godoc
// @Summary Update the logged-in user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteCurrentUser godoc
// @Summary Delete the logged-in user
// @Description Soft deletes the account. Historical data is retained but the
// @Description account can no longer log in.
// @Tags users
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to delete user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}

// clearUserData godoc
// @Summary Clear the user's transaction data
// @Description Permanently removes every expense and income record the user
// @Description owns. The account and preferences survive.
// @Tags users
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/clear-data [post]
func (h *userHandler) clearUserData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ClearUserData(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to clear user data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear user data"})
		return
	}

	logger.Info("Cleared all transaction data for user")
	c.Status(http.StatusNoContent)
}

// getPreferences godoc
// @Summary Get the user's preferences
// @Tags users
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/preferences [get]
func (h *userHandler) getPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update the user's preferences
// @Tags users
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Fields to update"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/preferences [put]
func (h *userHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	prefs, err := h.preferencesService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
