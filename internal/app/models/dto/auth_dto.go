package dto

import "github.com/yigit/examport/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	ExpiresIn int           `json:"expiresIn" example:"3600"`
	User      *models.User  `json:"user"`
}

// RequestResetRequest asks for a password reset token by email
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestResetResponse carries the issued reset token.
// In a full deployment the token would be mailed, not returned.
type RequestResetResponse struct {
	ResetToken string `json:"resetToken"`
}

// ResetPasswordRequest consumes a reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordRequest rotates a user's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
