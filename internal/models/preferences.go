package models

// UserPreferences is the row model for the user_preferences table.
type UserPreferences struct {
	PreferencesID        string `db:"preferences_id"`
	UserID               string `db:"user_id"`
	Theme                string `db:"theme"`
	Language             string `db:"language"`
	Currency             string `db:"currency"`
	NotificationsEnabled bool   `db:"notifications_enabled"`
	EmailNotifications   bool   `db:"email_notifications"`
	PushNotifications    bool   `db:"push_notifications"`
	AuditFields
}
