package auth

import (
	"testing"
	"time"

	"agenda_backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "token-test-secret"
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	token, err := GenerateToken(userID, tokenID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tokenID, claims.ID)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := GenerateToken(uuid.NewString(), uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbageToken(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	token, err := GenerateToken(uuid.NewString(), uuid.NewString(), time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
