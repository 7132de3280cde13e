package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/andrasnagy-data/campsite/internal/components/auth"
	"github.com/andrasnagy-data/campsite/internal/shared/httputil"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const usernameKey contextKey = "username"

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// NewAuthMiddleware creates authentication middleware that validates bearer
// tokens before a protected handler runs. The verified subject is added to
// the request context for downstream handlers. Requests with a missing or
// invalid token are rejected with 401 and never reach the handler.
func NewAuthMiddleware(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			username, err := tokens.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrInvalidUser) {
					httputil.WriteError(w, http.StatusUnauthorized, err.Error())
				} else {
					httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
