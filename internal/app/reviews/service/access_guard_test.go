package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusvoice/internal/app/reviews/repository/mocks"
	"campusvoice/internal/app/reviews/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "correct-admin-key"

func newTestGuard(sessions *mocks.MockSessionRepository) (*AccessGuard, *util.TokenManager) {
	tokens := util.NewTokenManager("test-session-secret", time.Hour)
	return NewAccessGuard(testAdminKey, tokens, sessions), tokens
}

func TestAuthorizeKey_ExactMatch(t *testing.T) {
	guard, _ := newTestGuard(new(mocks.MockSessionRepository))

	assert.True(t, guard.AuthorizeKey(testAdminKey))
}

func TestAuthorizeKey_RejectsNearMisses(t *testing.T) {
	guard, _ := newTestGuard(new(mocks.MockSessionRepository))

	assert.False(t, guard.AuthorizeKey(""))
	assert.False(t, guard.AuthorizeKey("Correct-admin-key"))
	assert.False(t, guard.AuthorizeKey(testAdminKey+" "))
	assert.False(t, guard.AuthorizeKey(" "+testAdminKey))
	assert.False(t, guard.AuthorizeKey(testAdminKey[:len(testAdminKey)-1]))
}

func TestAuthorize_RawKey(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	guard, _ := newTestGuard(sessions)

	assert.True(t, guard.Authorize(context.Background(), testAdminKey))
	sessions.AssertNotCalled(t, "Exists")
}

func TestAuthorize_LiveSessionToken(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	guard, tokens := newTestGuard(sessions)

	token, claims, err := tokens.Issue()
	require.NoError(t, err)

	sessions.On("Exists", context.Background(), claims.SessionID).Return(true, nil)

	assert.True(t, guard.Authorize(context.Background(), token))
}

func TestAuthorize_RevokedSessionToken(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	guard, tokens := newTestGuard(sessions)

	token, claims, err := tokens.Issue()
	require.NoError(t, err)

	sessions.On("Exists", context.Background(), claims.SessionID).Return(false, nil)

	assert.False(t, guard.Authorize(context.Background(), token))
}

func TestAuthorize_SessionStoreFailureDenies(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	guard, tokens := newTestGuard(sessions)

	token, claims, err := tokens.Issue()
	require.NoError(t, err)

	sessions.On("Exists", context.Background(), claims.SessionID).Return(false, errors.New("redis down"))

	assert.False(t, guard.Authorize(context.Background(), token))
}

func TestAuthorize_GarbageCredential(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	guard, _ := newTestGuard(sessions)

	assert.False(t, guard.Authorize(context.Background(), "neither-key-nor-token"))
	sessions.AssertNotCalled(t, "Exists")
}

func TestAuthorize_ExpiredSessionToken(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	expired := util.NewTokenManager("test-session-secret", -time.Minute)
	guard := NewAccessGuard(testAdminKey, util.NewTokenManager("test-session-secret", time.Hour), sessions)

	token, _, err := expired.Issue()
	require.NoError(t, err)

	assert.False(t, guard.Authorize(context.Background(), token))
	sessions.AssertNotCalled(t, "Exists")
}
