// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the database
//
// Services accept primitives and return domain errors; they know nothing
// about HTTP. The handler translates apperror values into status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/auth"
	"github.com/sakif/blog-api/internal/repository"
)

// AuthService implements the login flow.
//
// Flow: lookup by username → verify password → issue token. Both an unknown
// username and a wrong password produce the same "user not found" outcome —
// the original API reports 404 for both and the contract preserves that.
// (Distinguishing them at all is a username-enumeration weakness; a
// hardened variant would collapse both into a single 401 "invalid
// credentials" response.)
type AuthService struct {
	principals repository.PrincipalRepository
	tokens     *auth.TokenService
	passwords  *auth.PasswordService
	logger     *slog.Logger
}

func NewAuthService(
	principals repository.PrincipalRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		principals: principals,
		tokens:     tokens,
		passwords:  passwords,
		logger:     logger,
	}
}

// Login verifies the credentials and returns a signed access token.
//
// The caller (handler) has already rejected empty fields, so by the time we
// get here both values are non-empty. Returns apperror.ErrNotFound for an
// unknown username or a password mismatch, wrapped store errors otherwise.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	principal, err := s.principals.GetByUsername(ctx, username)
	if err != nil {
		// Either "user not found" (propagated as-is) or a real store
		// failure — both are already proper domain errors.
		return "", err
	}

	if err := s.passwords.Verify(principal.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", slog.String("username", username))
		return "", apperror.NotFound("user")
	}

	token, err := s.tokens.Issue(principal.ID)
	if err != nil {
		return "", fmt.Errorf("service/auth: issuing token for %s: %w", principal.ID, err)
	}

	s.logger.Info("login succeeded",
		slog.String("principalID", principal.ID),
		slog.String("username", username),
	)

	return token, nil
}
