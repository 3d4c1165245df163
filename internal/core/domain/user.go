package domain

import "time"

// AuthProvider identifies how a user account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an application user.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // External ID for OAuth accounts
	EmailVerified  bool         `json:"emailVerified"`
	PasswordHash   string       `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	// Refresh token details, stored hashed on the user row.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo mirrors the subset of Google's userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
