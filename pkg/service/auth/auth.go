// Package auth issues and inspects the JWT bearer tokens protecting the HTTP
// API.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/repository"
)

// Service authenticates users and issues signed tokens.
type Service struct {
	newUow repository.UnitOfWorkFactory
	cfg    config.Jwt
	logger *slog.Logger
}

// New creates the auth service.
func New(newUow repository.UnitOfWorkFactory, cfg config.Jwt, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{newUow: newUow, cfg: cfg, logger: logger.With("service", "auth")}
}

// Login checks the credentials and returns the authenticated user.
func (s *Service) Login(ctx context.Context, username, password string) (*user.User, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	u, err := uow.Users().GetByUsername(ctx, username)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", "username", username)
		return nil, user.ErrUnauthorized
	}
	if !u.CheckPassword(password) {
		s.logger.WarnContext(ctx, "login failed", "username", username)
		return nil, user.ErrUnauthorized
	}
	return u, nil
}

// GenerateToken signs a token carrying the user id, expiring after the
// configured lifetime.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.Expiry).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUserID extracts the user id from a verified token.
func CurrentUserID(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
