package services

import (
	"context"
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// TokenPair bundles a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken          string
	AccessTokenExpiresAt time.Time
	RefreshToken         string
}

// AuthResult is the outcome of a successful login or signup.
type AuthResult struct {
	Tokens      TokenPair
	User        *domain.User
	Permissions []domain.Permission
}

// AuthSvcFacade defines the authentication and session lifecycle operations.
type AuthSvcFacade interface {
	// RequestSignupOTP persists a one-time code for the phone and delivers
	// it best-effort. Delivery degradation never fails the call.
	RequestSignupOTP(ctx context.Context, phone string) error

	// Signup verifies the OTP and creates a Company together with its first
	// SuperAdmin user, seeding roles and the permission catalog mapping.
	Signup(ctx context.Context, req dto.SignupRequest) (*AuthResult, error)

	// Login authenticates by email/password and issues a token pair.
	// Issuing invalidates any previously issued refresh token for the user.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, time.Time, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
