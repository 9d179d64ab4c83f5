package middleware

import (
	"net/http"
	"strings"

	"github.com/diagnosis/luxehaven/internal/csrf"
	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

const CSRFHeader = "X-CSRF-Token"

// RequireJSON rejects requests whose Content-Type does not mention
// application/json.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			response.BadRequest(w, "Invalid content type")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCSRF checks the X-CSRF-Token header against the store before the
// body is read. Store failures are treated as an invalid token.
func RequireCSRF(store csrf.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(CSRFHeader)
			if token == "" {
				response.InvalidCSRF(w)
				return
			}
			ok, err := store.Validate(r.Context(), token)
			if err != nil {
				logger.ErrorContext(r.Context(), "CSRF token lookup failed", "error", err)
			}
			if !ok {
				response.InvalidCSRF(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
