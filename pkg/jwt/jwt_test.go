package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-predictable-results"

func TestGenerateAndParseToken(t *testing.T) {
	tokenStr, expireAt, err := GenerateToken(testSecret, 42, "alice@example.com", 24)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expireAt, 5*time.Second)

	claims, err := ParseToken(testSecret, tokenStr)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "teamtrack", claims.Issuer)
}

func TestParseTokenFailures(t *testing.T) {
	valid, _, err := GenerateToken(testSecret, 1, "a@b.c", 1)
	require.NoError(t, err)

	expired, _, err := GenerateToken(testSecret, 1, "a@b.c", -1)
	require.NoError(t, err)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	noneStr, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		secret   string
		tokenStr string
	}{
		{"wrong secret", "different-secret", valid},
		{"expired token", testSecret, expired},
		{"malformed token", testSecret, "not-a-token"},
		{"none signing method", testSecret, noneStr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.secret, tt.tokenStr)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
