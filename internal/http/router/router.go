// Package router assembles the public HTTP surface of the API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/diagnosis/luxehaven/internal/catalog"
	"github.com/diagnosis/luxehaven/internal/csrf"
	"github.com/diagnosis/luxehaven/internal/http/handlers"
	"github.com/diagnosis/luxehaven/internal/http/middleware"
	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/internal/platform/auth"
	mw "github.com/diagnosis/luxehaven/pkg/middleware"
)

const ServiceName = "luxehaven-api"

type Bookings interface {
	handlers.BookingSubmitter
	handlers.BookingReader
}

type Deps struct {
	CSRF     csrf.Store
	Bookings Bookings
	Catalog  *catalog.Catalog
	Tokens   middleware.TokenParser

	// Optional. A nil RateCounter disables rate limiting, a nil Idempotency
	// store disables replay and a nil Metrics skips /metrics.
	RateCounter middleware.Counter
	RateLimit   RateLimit
	Idempotency mw.IdempotencyStore
	Metrics     *mw.Metrics
}

type RateLimit struct {
	Requests   int
	Window     time.Duration
	TrustProxy bool
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName(ServiceName))
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(mw.SecurityHeaders)
	r.Use(mw.Health)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	csrfH := handlers.NewCSRFHandler(d.CSRF)
	bookingsH := handlers.NewBookingsHandler(d.Bookings)
	catalogH := handlers.NewCatalogHandler(d.Catalog)
	adminH := handlers.NewAdminHandler(d.Bookings)

	limit := passThrough
	if d.RateCounter != nil {
		limit = middleware.NewRateLimiter(d.RateCounter, middleware.RateLimitConfig{
			Requests:   d.RateLimit.Requests,
			Window:     d.RateLimit.Window,
			TrustProxy: d.RateLimit.TrustProxy,
		}).Middleware()
	}
	idempotent := passThrough
	if d.Idempotency != nil {
		idempotent = mw.IdempotencyMiddleware(d.Idempotency)
	}

	r.Route("/api", func(api chi.Router) {
		// Browser preflights are answered by cors. A bare OPTIONS without
		// Access-Control-Request-Method falls through to the routes below.
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "Idempotency-Key"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))

		api.With(limit).Get("/csrf-token", csrfH.Token)

		api.Options("/bookings", bookingsH.Preflight)
		api.With(
			limit,
			middleware.RequireJSON,
			middleware.RequireCSRF(d.CSRF),
			idempotent,
		).Post("/bookings", bookingsH.Create)

		catalogH.Register(api)

		api.With(middleware.RequireJWT(d.Tokens, auth.RoleAdmin)).Mount("/admin/bookings", adminH.Routes())
	})

	return r
}

func passThrough(next http.Handler) http.Handler { return next }
