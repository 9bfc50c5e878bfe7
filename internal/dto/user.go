package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to create a local user.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	DisplayCurrency string `json:"displayCurrency" binding:"omitempty,currency"`
}

// LoginRequest defines the credentials for a local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest asks for a new access token using a refresh token.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleExchangeRequest carries the authorization code from the Google
// sign-in redirect.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthResponse returns an access token and its expiry alongside the user.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID          string `json:"userID"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	DisplayCurrency string `json:"displayCurrency"`
}

// UpdateUserRequest changes user preferences. Only the display currency
// is mutable for now.
type UpdateUserRequest struct {
	DisplayCurrency string `json:"displayCurrency" binding:"required,currency"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Email:           u.Email,
		Name:            u.Name,
		DisplayCurrency: u.DisplayCurrency,
	}
}
