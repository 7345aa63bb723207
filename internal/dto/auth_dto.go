package dto

import (
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// RequestOTPRequest asks for a one-time code to be delivered to a phone.
type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required,e164"`
}

// SignupRequest creates a company together with its first SuperAdmin user.
// The OTP code must have been delivered to the phone beforehand.
type SignupRequest struct {
	CompanyName   string `json:"companyName" binding:"required"`
	CompanyDomain string `json:"companyDomain"`
	UserLimit     int    `json:"userLimit" binding:"omitempty,min=1"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,e164"`
	Password      string `json:"password" binding:"required,min=8"`
	OTPCode       string `json:"otpCode" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to be exchanged for a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenPairResponse carries a freshly issued access/refresh token pair.
type TokenPairResponse struct {
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
	RefreshToken         string    `json:"refreshToken"`
}

// LoginResponse is returned on successful login or signup.
type LoginResponse struct {
	TokenPairResponse
	User        UserResponse         `json:"user"`
	Permissions []PermissionResponse `json:"permissions"`
}

// RefreshResponse carries the new access token minted from a refresh token.
type RefreshResponse struct {
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
}

// PermissionResponse is one permission catalog entry.
type PermissionResponse struct {
	PermissionID string `json:"permissionID"`
	Module       string `json:"module"`
	Action       string `json:"action"`
}

// ToPermissionResponse converts a domain.Permission to its response DTO.
func ToPermissionResponse(p domain.Permission) PermissionResponse {
	return PermissionResponse{
		PermissionID: p.PermissionID,
		Module:       p.Module,
		Action:       p.Action,
	}
}

// ToPermissionResponses converts a slice of domain permissions.
func ToPermissionResponses(perms []domain.Permission) []PermissionResponse {
	out := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		out[i] = ToPermissionResponse(p)
	}
	return out
}
