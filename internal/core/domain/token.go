package domain

import "time"

// RefreshToken is a persisted long-lived credential. Only the SHA-256 hash of
// the opaque token is stored; at most one live row exists per user.
type RefreshToken struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userID"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// OTP is a one-time numeric code used to verify phone ownership before
// signup completes.
type OTP struct {
	OTPID     string    `json:"otpID"`
	Phone     string    `json:"phone"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Consumed  bool      `json:"consumed"`
	CreatedAt time.Time `json:"createdAt"`
}
