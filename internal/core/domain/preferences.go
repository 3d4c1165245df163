package domain

// ThemePreference selects the UI theme.
type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// UserPreferences holds per-user display and notification settings.
type UserPreferences struct {
	PreferencesID        string          `json:"preferencesID"` // Primary Key (UUID)
	UserID               string          `json:"userID"`
	Theme                ThemePreference `json:"theme"`
	Language             string          `json:"language"` // "en" or "pl"
	Currency             Currency        `json:"currency"` // preferred display currency
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	EmailNotifications   bool            `json:"emailNotifications"`
	PushNotifications    bool            `json:"pushNotifications"`
	AuditFields
}

// DefaultUserPreferences returns the preferences a fresh account starts with.
func DefaultUserPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:               userID,
		Theme:                ThemeSystem,
		Language:             "en",
		Currency:             CurrencyUSD,
		NotificationsEnabled: true,
		EmailNotifications:   true,
		PushNotifications:    true,
	}
}
