package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "mukesh-dairy-api",
		Audience:  "mukesh-dairy-app",
		Algorithm: "HS256",
		Expiry:    time.Hour,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT(models.JWT{
		ID:       7,
		Name:     "Admin",
		Username: "admin",
		Role:     "admin",
	}, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseJWTWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT(models.JWT{ID: 1, Username: "admin"}, cfg)
	require.NoError(t, err)

	bad := cfg
	bad.SecretKey = "other-secret"
	_, err = ParseJWT(token, bad)
	assert.Error(t, err)
}

func TestParseJWTWrongAudience(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT(models.JWT{ID: 1, Username: "admin"}, cfg)
	require.NoError(t, err)

	bad := cfg
	bad.Audience = "someone-else"
	_, err = ParseJWT(token, bad)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("mukesh123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("mukesh123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876543210", NormalizePhone("+91 98765-43210"))
	assert.Equal(t, "", NormalizePhone("n/a"))
}
