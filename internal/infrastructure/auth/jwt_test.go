package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(7, "casey", "agent")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AgentID)
	assert.Equal(t, "casey", claims.Username)
	assert.Equal(t, "agent", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	pair, err := svc.Generate(7, "casey", "agent")
	require.NoError(t, err)

	t.Run("refresh token rotates the pair", func(t *testing.T) {
		rotated, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, rotated.AccessToken)
		assert.NotEmpty(t, rotated.RefreshToken)

		claims, err := svc.Verify(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.AgentID)
	})

	t.Run("access token is not accepted for refresh", func(t *testing.T) {
		_, err := svc.Refresh(pair.AccessToken)
		require.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Refresh("not-a-token")
		require.Error(t, err)
	})
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	pair, err := NewJWTService("secret-a", 15, 7).Generate(7, "casey", "agent")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15, 7).Verify(pair.AccessToken)
	require.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, hasher.Verify(hash, "hunter22"))
	assert.Error(t, hasher.Verify(hash, "wrong"))
	assert.Error(t, hasher.Verify("not-a-hash", "hunter22"))
}
