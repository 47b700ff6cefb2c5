package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkeeper/qrkeeper/internal/common"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("secret-b"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("not.a.token", []byte("test-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
