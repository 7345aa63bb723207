package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "unit-test-secret"

	token, err := GenerateJWT("user-123", secret, time.Hour, "bookora")
	assert.NoError(t, err, "Generating a token should not fail")
	assert.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	assert.NoError(t, err, "A freshly issued token should validate")
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "bookora", claims.Issuer)

	// Wrong secret must be rejected
	_, err = ParseAndValidateJWT(token, "some-other-secret")
	assert.Error(t, err, "A token signed with another secret should not validate")
}

func TestParseExpiredJWT(t *testing.T) {
	secret := "unit-test-secret"

	token, err := GenerateJWT("user-123", secret, -time.Minute, "bookora")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, secret)
	assert.Error(t, err, "An expired token should not validate")
}

func TestHashRefreshToken(t *testing.T) {
	raw := "some-opaque-refresh-token"

	hash := HashRefreshToken(raw)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, raw, hash, "The stored value must not be the raw token")
	assert.Equal(t, hash, HashRefreshToken(raw), "Hashing must be deterministic for lookups")

	assert.True(t, CompareRefreshTokenHash(raw, hash))
	assert.False(t, CompareRefreshTokenHash("a-different-token", hash))
}

func TestGenerateOTPCode(t *testing.T) {
	code, err := GenerateOTPCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "OTP codes are digits only")
	}
}
