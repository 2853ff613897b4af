package service

import (
	"context"
	"crypto/subtle"

	"campusvoice/internal/app/reviews/repository"
	"campusvoice/internal/app/reviews/util"
)

// AccessGuard is the single authority for administrative access. A credential
// is either the shared admin key itself or a session token previously issued
// against it.
type AccessGuard struct {
	adminSecret string
	tokens      *util.TokenManager
	sessions    repository.SessionRepository
}

func NewAccessGuard(adminSecret string, tokens *util.TokenManager, sessions repository.SessionRepository) *AccessGuard {
	return &AccessGuard{
		adminSecret: adminSecret,
		tokens:      tokens,
		sessions:    sessions,
	}
}

// AuthorizeKey reports whether credential equals the configured admin secret
// exactly. Case-sensitive, no trimming, constant-time.
func (g *AccessGuard) AuthorizeKey(credential string) bool {
	return subtle.ConstantTimeCompare([]byte(credential), []byte(g.adminSecret)) == 1
}

// Authorize accepts the raw admin key or a signed, unexpired session token
// whose session id is still live in the session store. Anything else is
// denied; a session-store failure denies rather than guesses.
func (g *AccessGuard) Authorize(ctx context.Context, credential string) bool {
	if g.AuthorizeKey(credential) {
		return true
	}

	claims, err := g.tokens.Validate(credential)
	if err != nil {
		return false
	}

	active, err := g.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return false
	}

	return active
}
