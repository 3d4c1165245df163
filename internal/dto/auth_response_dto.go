package dto

import "time"

// LoginResponse returns the issued access token after a successful login.
// The refresh token travels separately as an HTTP-only cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshResponse returns a fresh access token.
type RefreshResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
