package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vasapolrittideah/e-comm-api/internal/auth"
	"github.com/vasapolrittideah/e-comm-api/internal/httputil"
)

type contextKey struct{}

var claimsKey = contextKey{}

// SessionGate guards protected routes. A missing Authorization header is
// rejected with 403; a present but malformed, tampered or expired token with
// 401. On success the decoded claims are attached to the request context.
// The gate keeps no state between requests.
func SessionGate(codec auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.Error(w, http.StatusForbidden, "missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httputil.Error(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the session claims the gate attached, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
