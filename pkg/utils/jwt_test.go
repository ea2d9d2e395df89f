package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	signed, err := GenerateToken("secret", "a@x.com", time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "HS256", token.Method.Alg())
	assert.Equal(t, "a@x.com", claims["email"])
	assert.NotEmpty(t, claims["sub"])
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken("", "a@x.com", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
