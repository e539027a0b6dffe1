package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("secret", 7, "user", 3, 30)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), at.Exp, 2*time.Second)

	tok, err := jwt.Parse(at.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, float64(3), claims["recruiter_id"])
}

func TestNewAccessTokenOmitsZeroRecruiter(t *testing.T) {
	at, err := NewAccessToken("secret", 1, "admin", 0, 30)
	require.NoError(t, err)

	tok, err := jwt.Parse(at.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	claims := tok.Claims.(jwt.MapClaims)
	_, present := claims["recruiter_id"]
	assert.False(t, present)
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	rt, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.Len(t, rt.Raw, 96)
	assert.Equal(t, HashRefreshRaw(rt.Raw), HashRefreshRaw(rt.Raw))
	assert.NotEqual(t, rt.Raw, HashRefreshRaw(rt.Raw))

	other, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, rt.Raw, other.Raw)
}
