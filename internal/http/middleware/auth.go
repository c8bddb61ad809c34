package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/synthapp/synth/internal/domain"
)

// TokenVerifier resolves a bearer token into the user it was issued to
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.AuthenticatedUser, error)
}

// AuthConfig holds the verifier used by the auth middleware
type AuthConfig struct {
	Verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware backed by verifier
func NewAuthMiddleware(verifier TokenVerifier) *AuthConfig {
	return &AuthConfig{
		Verifier: verifier,
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// RequireAuth verifies the bearer JWT and stores the caller in the request context
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeError(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			token, ok := BearerToken(r)
			if !ok {
				writeError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			user, err := ac.Verifier.VerifyToken(r.Context(), token)
			if err != nil {
				writeError(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := domain.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth stores the caller when a valid token is present and lets
// anonymous requests through.
func (ac *AuthConfig) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := BearerToken(r); ok {
				if user, err := ac.Verifier.VerifyToken(r.Context(), token); err == nil {
					r = r.WithContext(domain.ContextWithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
