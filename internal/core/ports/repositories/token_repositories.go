package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// RefreshTokenRepository defines persistence operations for refresh tokens.
// Rows are looked up by token hash; at most one live row exists per user.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteRefreshTokensByUser(ctx context.Context, userID string) error
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
}

// OTPRepository defines persistence operations for one-time codes.
type OTPRepository interface {
	SaveOTP(ctx context.Context, otp domain.OTP) error

	// FindLatestOTPByPhone returns the most recently created, unconsumed
	// code for the phone number.
	FindLatestOTPByPhone(ctx context.Context, phone string) (*domain.OTP, error)

	MarkOTPConsumed(ctx context.Context, otpID string) error
}
