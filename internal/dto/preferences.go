package dto

import "github.com/kicky1/dashboard/internal/core/domain"

// UpdatePreferencesRequest defines the data allowed for updating preferences.
// Pointer fields differentiate omitted fields from zero values.
type UpdatePreferencesRequest struct {
	Theme                *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Language             *string `json:"language" binding:"omitempty,oneof=en pl"`
	Currency             *string `json:"currency" binding:"omitempty,currency"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	EmailNotifications   *bool   `json:"emailNotifications"`
	PushNotifications    *bool   `json:"pushNotifications"`
}

// PreferencesResponse defines the API view of user preferences.
type PreferencesResponse struct {
	Theme                string `json:"theme"`
	Language             string `json:"language"`
	Currency             string `json:"currency"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	EmailNotifications   bool   `json:"emailNotifications"`
	PushNotifications    bool   `json:"pushNotifications"`
}

// ToPreferencesResponse converts domain.UserPreferences to its response DTO.
func ToPreferencesResponse(p *domain.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		Theme:                string(p.Theme),
		Language:             p.Language,
		Currency:             string(p.Currency),
		NotificationsEnabled: p.NotificationsEnabled,
		EmailNotifications:   p.EmailNotifications,
		PushNotifications:    p.PushNotifications,
	}
}
