package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/logging"
)

type claimsKey struct{}

// ClaimsFromContext returns the verified token claims set by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				logging.FromContext(r.Context()).Debug("rejected bearer token", "error", err)
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
