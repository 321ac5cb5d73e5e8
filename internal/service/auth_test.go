package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/teamtrack/backend/pkg/jwt"
)

const testSecret = "test-secret"

func TestSignupAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret, 24)

	user, err := svc.Signup("Alice", "555-0100", "  Alice@Example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// Duplicate email, regardless of case or padding.
	_, err = svc.Signup("Alice Again", "", "ALICE@example.com", "other password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40002:")

	token, _, err := svc.Login("alice@example.com", "correct horse")
	require.NoError(t, err)

	claims, err := jwtpkg.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	_, _, err = svc.Login("alice@example.com", "wrong password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40102:")

	_, _, err = svc.Login("nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40102:")
}

func TestSearchUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret, 24)

	createUser(t, db, "alice", "alice@corp.example.com")
	createUser(t, db, "bob", "bob@corp.example.com")
	createUser(t, db, "carol", "carol@other.example.com")
	for i := 0; i < 12; i++ {
		createUser(t, db, "x", "filler"+string(rune('a'+i))+"@corp.example.com")
	}

	results, err := svc.SearchUsers("corp.example")
	require.NoError(t, err)
	// Substring match, capped at 10.
	assert.Len(t, results, 10)

	results, err = svc.SearchUsers("carol@")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "carol@other.example.com", results[0].Email)
}
