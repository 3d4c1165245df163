package mapping

import (
	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/kicky1/dashboard/internal/models"
)

// ToModelUserPreferences converts domain UserPreferences to the row model
func ToModelUserPreferences(d domain.UserPreferences) models.UserPreferences {
	return models.UserPreferences{
		PreferencesID:        d.PreferencesID,
		UserID:               d.UserID,
		Theme:                string(d.Theme),
		Language:             d.Language,
		Currency:             string(d.Currency),
		NotificationsEnabled: d.NotificationsEnabled,
		EmailNotifications:   d.EmailNotifications,
		PushNotifications:    d.PushNotifications,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserPreferences converts a row model to domain UserPreferences
func ToDomainUserPreferences(m models.UserPreferences) domain.UserPreferences {
	return domain.UserPreferences{
		PreferencesID:        m.PreferencesID,
		UserID:               m.UserID,
		Theme:                domain.ThemePreference(m.Theme),
		Language:             m.Language,
		Currency:             domain.Currency(m.Currency),
		NotificationsEnabled: m.NotificationsEnabled,
		EmailNotifications:   m.EmailNotifications,
		PushNotifications:    m.PushNotifications,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
