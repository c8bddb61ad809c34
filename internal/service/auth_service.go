package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AuthService verifies the HS256 access tokens issued by the identity
// provider. The user id is the sub claim.
type AuthService struct {
	secret []byte
	admins map[string]struct{}
	logger logger.Logger
}

type AuthServiceConfig struct {
	JWTSecret    string
	AdminUserIDs []string
	Logger       logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Error("JWT secret is empty")
		}
		return nil, errors.New("jwt secret is required")
	}

	admins := make(map[string]struct{}, len(cfg.AdminUserIDs))
	for _, id := range cfg.AdminUserIDs {
		admins[id] = struct{}{}
	}

	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		admins: admins,
		logger: cfg.Logger,
	}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.AuthenticatedUser, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		s.logger.WithField("error", err.Error()).Debug("Rejected access token")
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	_, isAdmin := s.admins[sub]
	return &domain.AuthenticatedUser{ID: sub, Email: email, IsAdmin: isAdmin}, nil
}

func (s *AuthService) AuthenticateUserFromContext(ctx context.Context) (*domain.AuthenticatedUser, error) {
	user, ok := domain.UserFromContext(ctx)
	if !ok || user.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// RequireAdmin returns the caller when it is listed in ADMIN_USER_IDS
func (s *AuthService) RequireAdmin(ctx context.Context) (*domain.AuthenticatedUser, error) {
	user, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		s.logger.WithField("user_id", user.ID).Warn("Admin action denied")
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// IssueToken signs a token with the shared secret. Used by synthctl and tests.
func (s *AuthService) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
