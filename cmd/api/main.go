package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/diagnosis/luxehaven/internal/booking"
	"github.com/diagnosis/luxehaven/internal/catalog"
	"github.com/diagnosis/luxehaven/internal/csrf"
	"github.com/diagnosis/luxehaven/internal/http/middleware"
	"github.com/diagnosis/luxehaven/internal/http/router"
	"github.com/diagnosis/luxehaven/internal/notify"
	"github.com/diagnosis/luxehaven/internal/platform/auth"
	"github.com/diagnosis/luxehaven/internal/platform/mailer"
	"github.com/diagnosis/luxehaven/internal/repo/memory"
	"github.com/diagnosis/luxehaven/internal/repo/postgres"
	"github.com/diagnosis/luxehaven/pkg/config"
	"github.com/diagnosis/luxehaven/pkg/database"
	"github.com/diagnosis/luxehaven/pkg/events"
	"github.com/diagnosis/luxehaven/pkg/logger"
	mw "github.com/diagnosis/luxehaven/pkg/middleware"
)

const idempotencyCleanupInterval = time.Hour

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	var (
		pool *pgxpool.Pool
		rdb  *redis.Client
		err  error
	)

	if cfg.Database.URL != "" {
		pool, err = database.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
		logger.Info("Connected to PostgreSQL")
	}

	if cfg.Redis.URL != "" {
		rdb, err = database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("Connected to Redis")
	}

	// Bookings
	var store booking.Store
	if pool != nil {
		repo := postgres.NewBookingRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		store = repo
	} else {
		logger.Warn("DATABASE_URL not set, bookings are kept in memory")
		store = memory.NewBookingRepo()
	}

	// Events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, events disabled", "error", err)
		} else {
			publisher = bus
			logger.Info("Connected to NATS", "url", cfg.NATS.URL)
		}
	}
	defer publisher.Close()

	notifier := notify.NewEmailNotifier(newMailer(cfg.Email), cfg.Email.AdminEmail, notify.DefaultHotel)
	svc := booking.NewService(store, notifier, publisher)

	// CSRF tokens
	var (
		csrfStore csrf.Store
		memTokens *csrf.MemoryStore
	)
	switch {
	case cfg.CSRF.Store == "redis" && rdb != nil:
		csrfStore = csrf.NewRedisStore(rdb, cfg.CSRF.TTL)
	default:
		if cfg.CSRF.Store == "redis" {
			logger.Warn("CSRF_STORE=redis but REDIS_URL not set, using memory store")
		}
		memTokens = csrf.NewMemoryStore(cfg.CSRF.TTL, cfg.CSRF.MaxTokens)
		csrfStore = memTokens
	}

	// Idempotency and rate limiting prefer Redis, then Postgres, then memory.
	var (
		idem        mw.IdempotencyStore
		pgIdem      *postgres.IdempotencyRepo
		rateCounter middleware.Counter
	)
	switch {
	case rdb != nil:
		idem = mw.NewRedisIdempotencyStore(rdb)
	case pool != nil:
		pgIdem = postgres.NewIdempotencyRepo(pool)
		if err := pgIdem.EnsureSchema(ctx); err != nil {
			return err
		}
		idem = pgIdem
	default:
		idem = mw.NewMemoryIdempotencyStore()
	}
	if cfg.RateLimit.Enabled {
		if rdb != nil {
			rateCounter = middleware.NewRedisCounter(rdb)
		} else {
			rateCounter = middleware.NewMemoryCounter()
		}
	}

	handler := router.New(router.Deps{
		CSRF:        csrfStore,
		Bookings:    svc,
		Catalog:     catalog.New(),
		Tokens:      auth.NewTokens(cfg.Auth.JWTSecret),
		RateCounter: rateCounter,
		RateLimit: router.RateLimit{
			Requests:   cfg.RateLimit.Requests,
			Window:     cfg.RateLimit.Window,
			TrustProxy: cfg.RateLimit.TrustProxy,
		},
		Idempotency: idem,
		Metrics:     mw.NewMetrics("luxehaven"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting API server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down API server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if memTokens != nil {
		g.Go(func() error {
			return memTokens.Run(gctx, cfg.CSRF.SweepInterval)
		})
	}

	if pgIdem != nil {
		g.Go(func() error {
			ticker := time.NewTicker(idempotencyCleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					n, err := pgIdem.CleanupExpired(gctx)
					if err != nil {
						logger.Warn("Idempotency cleanup failed", "error", err)
						continue
					}
					logger.Debug("Idempotency cleanup", "removed", n)
				}
			}
		})
	}

	return g.Wait()
}

func newMailer(cfg config.EmailConfig) mailer.Service {
	switch {
	case cfg.DevMode:
		logger.Info("Email dev mode, messages are printed to stdout")
		return mailer.NewDevMailer(os.Stdout)
	case cfg.MailerSendKey != "":
		return mailer.NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.FromEmail, "luxehaven", "booking-inquiry")
	default:
		return mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.FromEmail, cfg.FromName, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUseTLS)
	}
}
