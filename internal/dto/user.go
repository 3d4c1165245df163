package dto

import (
	"github.com/kicky1/dashboard/internal/core/domain"
)

// RegisterRequest defines the payload for email/password sign-up.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest defines the payload for email/password sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID        string `json:"userID"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	AuthProvider  string `json:"authProvider"`
	EmailVerified bool   `json:"emailVerified"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Email:         user.Email,
		Name:          user.Name,
		AuthProvider:  string(user.AuthProvider),
		EmailVerified: user.EmailVerified,
	}
}
