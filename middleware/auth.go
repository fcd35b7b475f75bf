package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/auth"
)

// contextKey is unexported so no other package can collide with or forge
// the identity value attached to a request.
type contextKey int

const identityKey contextKey = iota

// BearerAuth validates "Authorization: Bearer <token>" headers on protected
// endpoints and attaches the decoded identity to the request context.
type BearerAuth struct {
	jwtManager *auth.JWTManager
}

// NewBearerAuth creates the bearer-token middleware
func NewBearerAuth(jwtManager *auth.JWTManager) *BearerAuth {
	return &BearerAuth{jwtManager: jwtManager}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Protect wraps a handler chain with token verification
func (ba *BearerAuth) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug().Str("path", r.URL.Path).Msg("Missing or invalid bearer header")
			unauthorized(w, "Missing or invalid bearer header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ba.jwtManager.Validate(tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("Token validation failed")
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, *claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the authenticated identity attached by
// Protect, if any.
func IdentityFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(identityKey).(auth.Claims)
	return claims, ok
}
