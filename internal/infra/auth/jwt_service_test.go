package auth

import (
	"testing"
	"time"

	"market/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, time.Hour, jwtService.AccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Minute)

	issuedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	jwtService.now = func() time.Time { return issuedAt }

	token, err := jwtService.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	jwtService.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	other := newTestJWTService(t, time.Hour)
	other.accessSecret = []byte("another_secret_key_of_reasonable_length")

	token, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNonAccessToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  issuer,
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	})
	signed, err := token.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, jwtService.AccessTokenDuration())
}
