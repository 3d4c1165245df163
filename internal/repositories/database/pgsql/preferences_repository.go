package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	"github.com/kicky1/dashboard/internal/models"
	"github.com/kicky1/dashboard/internal/utils/mapping"
)

type PgxPreferencesRepository struct {
	BaseRepository
}

func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.PreferencesRepository {
	return &PgxPreferencesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPreferencesRepository implements portsrepo.PreferencesRepository
var _ portsrepo.PreferencesRepository = (*PgxPreferencesRepository)(nil)

// SavePreferences inserts or replaces the preferences row. A user has at
// most one row, keyed by user_id.
func (r *PgxPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	m := mapping.ToModelUserPreferences(prefs)
	query := `
        INSERT INTO user_preferences (preferences_id, user_id, theme, language, currency, notifications_enabled, email_notifications, push_notifications, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (user_id) DO UPDATE SET
            theme = EXCLUDED.theme,
            language = EXCLUDED.language,
            currency = EXCLUDED.currency,
            notifications_enabled = EXCLUDED.notifications_enabled,
            email_notifications = EXCLUDED.email_notifications,
            push_notifications = EXCLUDED.push_notifications,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PreferencesID,
		m.UserID,
		m.Theme,
		m.Language,
		m.Currency,
		m.NotificationsEnabled,
		m.EmailNotifications,
		m.PushNotifications,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (r *PgxPreferencesRepository) FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	query := `
		SELECT preferences_id, user_id, theme, language, currency, notifications_enabled, email_notifications, push_notifications, created_at, created_by, last_updated_at, last_updated_by
		FROM user_preferences
		WHERE user_id = $1;
	`
	var m models.UserPreferences
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.PreferencesID,
		&m.UserID,
		&m.Theme,
		&m.Language,
		&m.Currency,
		&m.NotificationsEnabled,
		&m.EmailNotifications,
		&m.PushNotifications,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences for user %s: %w", userID, err)
	}

	d := mapping.ToDomainUserPreferences(m)
	return &d, nil
}
