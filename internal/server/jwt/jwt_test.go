package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	token, expiresIn, err := service.GenerateToken("device-a", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "device-a", claims.DeviceID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "device-a", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := NewService("secret-one", time.Hour).GenerateToken("device-a", "user-1")
	require.NoError(t, err)

	_, err = NewService("secret-two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService("test-secret", -time.Minute)

	token, _, err := service.GenerateToken("device-a", "user-1")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
