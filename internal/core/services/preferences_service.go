package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
)

// preferencesService implements PreferencesSvcFacade.
type preferencesService struct {
	preferencesRepo portsrepo.PreferencesRepository
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(preferencesRepo portsrepo.PreferencesRepository) portssvc.PreferencesSvcFacade {
	return &preferencesService{preferencesRepo: preferencesRepo}
}

// GetPreferences returns the user's preferences. Accounts created before the
// preferences row existed get defaults written on first read.
func (s *preferencesService) GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	prefs, err := s.preferencesRepo.FindPreferencesByUserID(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	now := time.Now()
	defaults := domain.DefaultUserPreferences(userID)
	defaults.PreferencesID = uuid.NewString()
	defaults.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.preferencesRepo.SavePreferences(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", err)
	}
	return &defaults, nil
}

func (s *preferencesService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		prefs.Theme = domain.ThemePreference(*req.Theme)
	}
	if req.Language != nil {
		prefs.Language = *req.Language
		// Switching language drags the display currency along unless the
		// request pins one explicitly.
		if req.Currency == nil {
			prefs.Currency = domain.CurrencyForLanguage(*req.Language)
		}
	}
	if req.Currency != nil {
		currency := domain.Currency(*req.Currency)
		if !currency.IsSupported() {
			return nil, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, currency)
		}
		prefs.Currency = currency
	}
	if req.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		prefs.PushNotifications = *req.PushNotifications
	}
	prefs.LastUpdatedAt = time.Now()
	prefs.LastUpdatedBy = userID

	if err := s.preferencesRepo.SavePreferences(ctx, *prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return prefs, nil
}
