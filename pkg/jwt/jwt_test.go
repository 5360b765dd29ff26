package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 60, 72)

	token, err := m.GenerateAccessToken("user-1", "a@b.com", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	m := NewManager("secret", 60, 72)

	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewManager("secret-a", 60, 72).GenerateAccessToken("u", "e@x.com", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 60, 72).ValidateToken(token)
	assert.Error(t, err)
}
