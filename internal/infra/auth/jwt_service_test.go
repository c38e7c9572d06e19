package auth

import (
	"testing"
	"time"

	"hwehweme/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsCrossSignedTypes(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	// A token claiming to be an access token but signed with the refresh
	// secret must not validate.
	forged, err := svc.generateToken(userID, time.Hour, svc.refreshSecret, "access")
	require.NoError(t, err)

	_, err = svc.ValidateToken(forged)

	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not-a-token")

	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)

	expired, err := svc.generateToken(uuid.New(), -time.Minute, svc.accessSecret, "access")
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)

	assert.Error(t, err)
}

func TestJWTService_HashTokenIsDeterministic(t *testing.T) {
	svc := newTestJWTService(t)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	other := svc.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}

func TestJWTService_TTLDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
