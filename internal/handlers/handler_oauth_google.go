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

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthSvc, services.UserSvc, services.TokenSvc)

	oauth := rg.Group("/api/v1/auth/google")
	{
		oauth.GET("/login", h.LoginGoogle)
		oauth.POST("/exchange-code", h.ExchangeCodeGoogle)
		oauth.POST("/verify-id-token", h.VerifyIDTokenGoogle)
	}
}

// ExchangeCodeRequest defines the expected JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyIDTokenRequest defines the expected JSON body for the verify-id-token endpoint.
type VerifyIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginGoogle godoc
// @Summary Start the Google login flow
// @Description Redirects the browser to Google's consent page.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString()
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	// State is echoed back by Google and verified client side.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(state))
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for an access token
// @Description Exchanges the Google authorization code for tokens, creates or
// @Description retrieves the user, and returns an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	userInfo, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch user info"})
		return
	}

	h.loginWithGoogleIdentity(c, userInfo)
}

// VerifyIDTokenGoogle godoc
// @Summary Log in with a Google ID token
// @Description Validates an ID token obtained client-side and returns an
// @Description application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body VerifyIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/verify-id-token [post]
func (h *GoogleOAuthHandler) VerifyIDTokenGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req VerifyIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	userInfo, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid ID token"})
		return
	}

	h.loginWithGoogleIdentity(c, userInfo)
}

// loginWithGoogleIdentity creates or retrieves the user for the verified
// Google identity and responds with the application tokens.
func (h *GoogleOAuthHandler) loginWithGoogleIdentity(c *gin.Context, userInfo *domain.GoogleUserInfo) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := h.userService.CreateOAuthUser(ctx, userInfo.Name, userInfo.Email, string(domain.ProviderGoogle), userInfo.ID, userInfo.VerifiedEmail)
	if err != nil {
		logger.Error("Failed to create or retrieve oauth user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in with Google"})
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
