package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := NewTokenManager("test-session-secret", time.Hour)

	token, claims, err := manager.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, claims.SessionID)

	parsed, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID, parsed.SessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_UniqueSessionIDs(t *testing.T) {
	manager := NewTokenManager("test-session-secret", time.Hour)

	_, first, err := manager.Issue()
	require.NoError(t, err)
	_, second, err := manager.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("test-session-secret", time.Hour)
	verifier := NewTokenManager("another-secret", time.Hour)

	token, _, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager("test-session-secret", -time.Minute)

	token, _, err := manager.Issue()
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager("test-session-secret", time.Hour)

	_, err := manager.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
