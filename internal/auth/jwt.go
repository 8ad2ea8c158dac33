// Package auth provides bearer-token issuance/verification and password
// hashing for the blog API.
//
// AUTHENTICATION FLOW OVERVIEW:
// 1. The principal POSTs username/password to /login
// 2. The service verifies the credentials against the stored bcrypt hash
// 3. The server issues a signed JWT access token, returned as {accessToken}
// 4. On protected routes, middleware reads the Authorization: Bearer header,
//    validates the JWT, and sets the principal ID in the request context
//
// WHY JWT?
// The token is stateless — nothing is persisted server-side. All the
// information needed (subject, expiry) is inside the signed token, and the
// signature ensures nobody can tamper with it without the secret key.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "blog-api"

// ErrTokenInvalid covers every verification failure: a missing, malformed,
// tampered, or expired token. Callers that need to branch on the sub-cause
// should not — the HTTP boundary treats them all identically so that a
// forger learns nothing from the response.
var ErrTokenInvalid = errors.New("auth: invalid token")

// TokenService issues and verifies JWT access tokens.
//
// It holds the HMAC secret used to sign and verify. The same secret must be
// used for both operations; it is loaded once at startup and never mutated.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given secret and token
// lifetime. The secret should be at least 32 bytes of random data in
// production (e.g. JWT_SECRET=$(openssl rand -hex 32)); anything shorter
// than 16 characters is rejected outright.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// claims is the JWT payload. jwt.RegisteredClaims carries the standard
// fields; the principal ID travels in "sub" (Subject).
type claims struct {
	jwt.RegisteredClaims
}

// Issue creates and signs an access token for the given principal ID with
// the service's configured lifetime.
func (s *TokenService) Issue(principalID string) (string, error) {
	return s.IssueWithDuration(principalID, s.ttl)
}

// IssueWithDuration creates a token with a custom expiry. Used by tests to
// mint already-expired tokens.
func (s *TokenService) IssueWithDuration(principalID string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Verify parses and verifies a token string, returning the principal ID
// from the "sub" claim.
//
// The jwt library checks the signature before it evaluates expiry, so a
// forged token is rejected for its signature and never reveals anything
// about expiry handling. Algorithm pinning (WithValidMethods) prevents
// algorithm-confusion attacks where an attacker submits a token declaring
// "none" or an asymmetric scheme.
//
// Every failure collapses into ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return "", ErrTokenInvalid
	}

	return c.Subject, nil
}
