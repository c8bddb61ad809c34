package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/synthapp/synth/internal/domain AuthService

type contextKey string

const authUserKey contextKey = "auth_user"

// AuthenticatedUser is the caller resolved from the bearer token
type AuthenticatedUser struct {
	ID      string
	Email   string
	IsAdmin bool
}

// ContextWithUser stores the authenticated user in ctx
func ContextWithUser(ctx context.Context, user *AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// UserFromContext returns the authenticated user stored by the auth middleware
func UserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserKey).(*AuthenticatedUser)
	return user, ok && user != nil
}

type AuthService interface {
	// VerifyToken validates an access token and returns the user it was issued to
	VerifyToken(ctx context.Context, token string) (*AuthenticatedUser, error)
	AuthenticateUserFromContext(ctx context.Context) (*AuthenticatedUser, error)
	RequireAdmin(ctx context.Context) (*AuthenticatedUser, error)
}
