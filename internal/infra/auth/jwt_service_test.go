package auth

import (
	"testing"
	"time"

	"stampcard/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(createTestJWTConfig())
	require.NoError(t, err)

	merchantID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(merchantID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	got, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, merchantID, got)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc, err := NewJWTService(createTestJWTConfig())
	require.NoError(t, err)

	_, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Signed with the refresh secret, so it must not validate as access.
	_, err = svc.ValidateAccessToken(refreshToken)
	require.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService(createTestJWTConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "tampered")
	require.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(createTestJWTConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	otherCfg := createTestJWTConfig()
	otherCfg.SecretKey.Access = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(accessToken)
	require.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	cfg := createTestJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultRefreshTTL, svc.GetRefreshTokenDuration())

	cfg.Auth = &config.AuthConfig{RefreshTTL: 48 * time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}
