package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/merchly/quoter-backend/api/routes"
	"github.com/merchly/quoter-backend/internal/coupon"
	"github.com/merchly/quoter-backend/internal/cron"
	"github.com/merchly/quoter-backend/internal/quote"
	"github.com/merchly/quoter-backend/pkg/config"
	"github.com/merchly/quoter-backend/pkg/logger"
	"github.com/merchly/quoter-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)
	jobMetrics := metrics.NewJobMetrics(registry)

	engine, err := quote.NewEngine(quote.EngineParams{
		Logger:  logg,
		Metrics: quoteMetrics,
		Coupons: coupon.NewService(),
		TTL:     cfg.Quote.TTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create quote engine", err)
		os.Exit(1)
	}

	sweepJob, err := cron.NewQuoteSweepJob(logg, engine)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote sweep job", err)
		os.Exit(1)
	}

	sweeper, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(sweepJob),
		Lock:     cron.NewLocalLock(),
		Metrics:  jobMetrics,
		Interval: cfg.Quote.SweepInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sweeper", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := sweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "sweeper stopped unexpectedly", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting quote api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, engine),
	}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logg.Error(context.Background(), "error shutting down server", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(context.Background(), "api server shutting down gracefully")
}
