package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{Secret: "unit-test-secret", ExpiryHours: 2}
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(cfg, userID, "081234567890")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Expiry kira-kira 2 jam dari sekarang
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)

	claims, err := ParseToken(cfg.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "081234567890", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{Secret: "secret-a", ExpiryHours: 1}
	token, _, err := GenerateToken(cfg, uuid.New(), "081234567890")
	require.NoError(t, err)

	_, err = ParseToken("secret-b", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{Secret: "unit-test-secret", ExpiryHours: 1}
	token, _, err := GenerateToken(cfg, uuid.New(), "081234567890")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(cfg.Secret, tampered)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	// ExpiryHours negatif menghasilkan token yang sudah kadaluarsa
	cfg := JWTConfig{Secret: "unit-test-secret", ExpiryHours: -1}
	token, _, err := GenerateToken(cfg, uuid.New(), "081234567890")
	require.NoError(t, err)

	_, err = ParseToken(cfg.Secret, token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("unit-test-secret", "definitely.not.ajwt")
	assert.Error(t, err)
}
