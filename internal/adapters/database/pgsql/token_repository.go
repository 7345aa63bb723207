package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RefreshTokenRepository stores refresh token hashes. The service layer
// deletes a user's rows before inserting, keeping one live row per user.
type RefreshTokenRepository struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

var _ repositories.RefreshTokenRepository = (*RefreshTokenRepository)(nil)

func (r *RefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (token_hash, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4);
    `
	if _, err := r.db.Exec(ctx, query, token.TokenHash, token.UserID, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `SELECT token_hash, user_id, expires_at, created_at FROM refresh_tokens WHERE token_hash = $1;`
	var token domain.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&token.TokenHash,
		&token.UserID,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return &token, nil
}

func (r *RefreshTokenRepository) DeleteRefreshTokensByUser(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete user refresh tokens: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1;`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// OTPRepository stores one-time signup codes.
type OTPRepository struct {
	db *pgxpool.Pool
}

func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{db: db}
}

var _ repositories.OTPRepository = (*OTPRepository)(nil)

func (r *OTPRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	query := `
        INSERT INTO otps (otp_id, phone, code, expires_at, consumed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	if _, err := r.db.Exec(ctx, query, otp.OTPID, otp.Phone, otp.Code, otp.ExpiresAt, otp.Consumed, otp.CreatedAt); err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (r *OTPRepository) FindLatestOTPByPhone(ctx context.Context, phone string) (*domain.OTP, error) {
	query := `
        SELECT otp_id, phone, code, expires_at, consumed, created_at
        FROM otps
        WHERE phone = $1 AND consumed = FALSE
        ORDER BY created_at DESC
        LIMIT 1;
    `
	var otp domain.OTP
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&otp.OTPID,
		&otp.Phone,
		&otp.Code,
		&otp.ExpiresAt,
		&otp.Consumed,
		&otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	return &otp, nil
}

func (r *OTPRepository) MarkOTPConsumed(ctx context.Context, otpID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE otps SET consumed = TRUE WHERE otp_id = $1;`, otpID)
	if err != nil {
		return fmt.Errorf("failed to mark otp consumed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
