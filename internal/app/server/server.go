package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"idms/internal/domain/payslip"
	"idms/internal/platform/config"
	"idms/internal/platform/logging"
	"idms/internal/platform/metrics"
	"idms/internal/transport/http/api"
	paysliphandler "idms/internal/transport/http/handlers/payslip"
	"idms/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	layout := payslip.DefaultLayout()
	if cfg.LayoutFile != "" {
		loaded, err := payslip.LoadLayout(cfg.LayoutFile, layout)
		if err != nil {
			return nil, fmt.Errorf("payslip layout: %w", err)
		}
		layout = loaded
	}

	collector := metrics.New()
	renderer := payslip.NewRenderer(layout, payslip.WithStrictTotals(cfg.StrictTotals))
	service := payslip.NewService(renderer, logger, collector)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, r, collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		paysliphandler.NewHandler(service).RegisterRoutes(r)
	})

	return &App{Config: cfg, Logger: logger, Metrics: collector, Router: router}, nil
}

// Run serves the application until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Serve(ctx)
}

// Serve listens on the configured address and shuts down gracefully when
// ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: a.Config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("payslip server listening", zap.String("addr", a.Config.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Logger.Info("payslip server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
