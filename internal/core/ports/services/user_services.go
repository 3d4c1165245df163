package services

import (
	"context"
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/kicky1/dashboard/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new local (email/password) user with default preferences.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser creates or retrieves a user for an external identity.
	CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error)

	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (sign-out).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete).
	DeleteUser(ctx context.Context, userID string) error

	// ClearUserData wipes every expense and income record the user owns.
	ClearUserData(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}

// PreferencesSvcFacade defines operations over per-user preferences.
type PreferencesSvcFacade interface {
	// GetPreferences returns the user's preferences, creating defaults when
	// none exist yet.
	GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error)
}
