package auth

import (
	"testing"
	"time"

	"gather/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenKey:        "test_token_key_very_long_for_testing",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	return cfg
}

func TestJWTService_CreateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, err := jwtService.CreateAccessToken(userID, "bob", "bob@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "bob", claims.UserName)
	assert.Equal(t, "bob@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_MissingTokenKeyFailsStartup(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenSignedWithDifferentKeyRejected(t *testing.T) {
	first, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.Auth.TokenKey = "another_token_key_very_long_for_testing"
	second, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := first.CreateAccessToken(uuid.New(), "bob", "bob@example.com")
	require.NoError(t, err)

	claims, err := second.ValidateAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshTokenValues(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	first, err := jwtService.GenerateRefreshTokenValue()
	require.NoError(t, err)
	second, err := jwtService.GenerateRefreshTokenValue()
	require.NoError(t, err)

	// 32 bytes of entropy encode to 43 base64url characters.
	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)

	// Hashing is deterministic and never echoes the raw value.
	assert.Equal(t, jwtService.HashToken(first), jwtService.HashToken(first))
	assert.NotEqual(t, jwtService.HashToken(first), jwtService.HashToken(second))
	assert.NotContains(t, jwtService.HashToken(first), first)
}
