package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/kicky1/dashboard/internal/core/domain"
)

// TokenSvcFacade defines operations for issuing and validating tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a short-lived JWT for the given user.
	GenerateAccessToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)

	// GenerateRefreshToken issues an opaque refresh token and persists its
	// hash against the user record.
	GenerateRefreshToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)

	// ValidateAndParseRefreshToken verifies a refresh token against the
	// stored hash and returns the owning user.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade defines the operations for the Google OAuth flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString returns a random state parameter for CSRF protection.
	GenerateStateString() (string, error)

	// GetGoogleLoginURL builds the Google consent page URL for the state.
	GetGoogleLoginURL(state string) string

	// ExchangeCodeForToken swaps the authorization code for an OAuth token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the Google profile for the token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token obtained client-side.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}
