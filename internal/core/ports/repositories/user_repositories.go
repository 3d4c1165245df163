package repositories

import (
	"context"
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByProvider looks a user up by OAuth provider and external ID.
	FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// MarkUserDeleted soft deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// PreferencesRepository defines persistence operations for user preferences.
type PreferencesRepository interface {
	// SavePreferences inserts or replaces the user's preferences row.
	SavePreferences(ctx context.Context, prefs domain.UserPreferences) error
	FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error)
}
