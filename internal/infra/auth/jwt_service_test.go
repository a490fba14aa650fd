package auth

import (
	"testing"
	"time"

	"dentalstore/config"
	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testSessionConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Secret: "test_session_secret_key_very_long_for_testing",
			TTL:    24 * time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testSessionConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_DistinctTokensPerLogin(t *testing.T) {
	jwtService, err := NewJWTService(testSessionConfig())
	assert.NoError(t, err)

	userID := uuid.New()

	// Repeated sign-ins must mint distinct tokens so each session row is unique.
	first, err := jwtService.GenerateToken(userID, entity.RoleUser)
	assert.NoError(t, err)
	second, err := jwtService.GenerateToken(userID, entity.RoleUser)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testSessionConfig())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testSessionConfig())
	assert.NoError(t, err)

	otherCfg := testSessionConfig()
	otherCfg.Session.Secret = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := otherService.GenerateToken(uuid.New(), entity.RoleUser)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Session.TTL = -time.Minute
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleUser)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Session.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func TestJWTService_SessionDuration(t *testing.T) {
	jwtService, err := NewJWTService(testSessionConfig())
	assert.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.SessionDuration())
}
