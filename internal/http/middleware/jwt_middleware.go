package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/internal/platform/auth"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// TokenParser is satisfied by *auth.Tokens.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// RequireJWT rejects requests without a valid bearer token and, when roles are
// given, requests whose token carries none of them.
func RequireJWT(parser TokenParser, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				response.Unauthorized(w, "invalid authorization header")
				return
			}
			raw := strings.TrimPrefix(authz, "Bearer ")
			claims, err := parser.Parse(raw)
			if err != nil {
				logger.WarnContext(r.Context(), "Rejected bearer token", "error", err)
				response.Unauthorized(w, "invalid authorization token")
				return
			}
			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				response.Forbidden(w, "insufficient role")
				return
			}
			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(CtxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}
