// Package session provides the server-side session store. Sessions are
// opaque random tokens handed to clients in a cookie; the authenticated role
// lives only on the server and is re-read on every request.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/mywebsite/privatemedia/internal/auth"
)

// ErrNoSession is returned when the token has no active session.
var ErrNoSession = errors.New("no active session")

// Store is the interface for session persistence.
type Store interface {
	// Create starts a session for the role and returns its opaque token.
	Create(ctx context.Context, role auth.Role, ttl time.Duration) (string, error)
	// Get resolves the token to its role. Expired or unknown tokens, and
	// tokens whose stored role fails validation, yield ErrNoSession.
	Get(ctx context.Context, token string) (auth.Role, error)
	// Delete ends the session. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
}
