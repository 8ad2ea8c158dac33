package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is an unexported type used for context keys in this package.
// A package-private type prevents collisions: only this package can read or
// write principal IDs in the context.
type contextKey string

const principalIDKey contextKey = "principalID"

// RequireAuth is the gate in front of protected routes.
//
// It reads the token from the Authorization: Bearer header, verifies it,
// and stores the principal ID in the request context. On any failure —
// header absent, wrong scheme, unparseable token, bad signature, expired —
// it writes the same 401 response and never invokes the downstream handler.
//
// MIDDLEWARE PATTERN IN GO:
// A middleware takes an http.Handler and returns a new http.Handler that
// wraps it. Chi applies them in a chain: req → gate → handler → resp.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principalID, err := extractPrincipalID(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","message":"valid authentication required"}`))
				return
			}

			ctx := context.WithValue(r.Context(), principalIDKey, principalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalIDFromContext retrieves the authenticated principal's ID from the
// request context. Returns ("", false) if the request did not pass through
// RequireAuth.
func PrincipalIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(principalIDKey).(string)
	return id, ok && id != ""
}

// extractPrincipalID reads the Authorization header and verifies the bearer
// token. The scheme comparison is case-insensitive per RFC 7235.
func extractPrincipalID(r *http.Request, tokens *TokenService) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrTokenInvalid
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrTokenInvalid
	}

	return tokens.Verify(strings.TrimSpace(token))
}
