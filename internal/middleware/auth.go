package middleware

import (
	"context"
	"net/http"

	"github.com/mywebsite/privatemedia/internal/auth"
	"github.com/mywebsite/privatemedia/internal/response"
	"github.com/mywebsite/privatemedia/internal/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// roleKey is the context key for the authenticated session's role.
const roleKey contextKey = "role"

// RequireAuth returns middleware that resolves the session cookie against the
// session store and injects the validated role into the request context.
// There is no ambient session state; each request re-reads the store.
func RequireAuth(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.SessionCookie)
			if err != nil || c.Value == "" {
				response.Unauthorized(w, "authentication required")
				return
			}

			role, err := sessions.Get(r.Context(), c.Value)
			if err != nil {
				response.Unauthorized(w, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleFromContext returns the role injected by RequireAuth.
func RoleFromContext(ctx context.Context) (auth.Role, bool) {
	role, ok := ctx.Value(roleKey).(auth.Role)
	return role, ok
}
