package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/internal/notify"
	"github.com/diagnosis/luxehaven/pkg/config"
	"github.com/diagnosis/luxehaven/pkg/events"
	"github.com/diagnosis/luxehaven/pkg/logger"
	mw "github.com/diagnosis/luxehaven/pkg/middleware"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Notify service error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.NATS.URL == "" {
		return errors.New("NATS_URL is required")
	}

	bus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		return err
	}
	defer bus.Close()

	metrics := mw.NewMetrics("luxehaven_notify")
	feed := notify.NewBookingFeed(metrics.Registerer())
	if err := feed.Subscribe(bus); err != nil {
		return err
	}
	logger.Info("Subscribed to booking events", "subject", events.BookingSubmitted)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("notify"))
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(mw.Health)
	r.Use(metrics.Middleware)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "not found")
	})

	srv := &http.Server{
		Addr:         ":" + cfg.NATS.NotifyPort,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting notify service", "port", cfg.NATS.NotifyPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down notify service...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
