// Command server starts the AI Interview Coach HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/ai/stub"
	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/ai/tokencount"
	httpserver "github.com/fairyhunter13/ai-interview-coach/internal/adapter/httpserver"
	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/observability"
	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/repo/sqlite"
	"github.com/fairyhunter13/ai-interview-coach/internal/app"
	"github.com/fairyhunter13/ai-interview-coach/internal/config"
	"github.com/fairyhunter13/ai-interview-coach/internal/service/ratelimiter"
	"github.com/fairyhunter13/ai-interview-coach/internal/service/validation"
	"github.com/fairyhunter13/ai-interview-coach/internal/usecase"
)

func main() {
	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register all Prometheus metrics once per process so that /metrics
	// exposes HTTP and validation instrumentation.
	observability.InitMetrics()

	// Analytics store (SQLite)
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("analytics store open failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close analytics store", slog.Any("error", err))
		}
	}()

	// Redis-backed strict limiter for generation; optional.
	var (
		limiter    ratelimiter.Limiter
		redisCheck func(ctx context.Context) error
	)
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		limiter = ratelimiter.NewRedisLuaLimiter(rdb, map[string]ratelimiter.BucketConfig{
			"generate": ratelimiter.NewBucketConfigFromPerMinute(cfg.GenerateRatePerMin),
		})
		redisCheck = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		slog.Info("redis rate limiter enabled", slog.String("addr", cfg.RedisAddr))
	} else {
		slog.Info("redis not configured, strict generation limit runs in-process only")
	}

	// Validation engine
	opts := []validation.Option{validation.WithLimits(validation.Limits{
		JobDescriptionMinChars: cfg.JobDescriptionMinChars,
		JobDescriptionMaxChars: cfg.JobDescriptionMaxChars,
		JobDescriptionMaxLines: cfg.JobDescriptionMaxLines,
		ResumeSummaryMaxChars:  cfg.ResumeSummaryMaxChars,
	})}
	if cfg.KeywordTablesPath != "" {
		tables, err := validation.LoadTables(cfg.KeywordTablesPath)
		if err != nil {
			slog.Error("keyword tables load failed", slog.Any("error", err), slog.String("path", cfg.KeywordTablesPath))
			os.Exit(1)
		}
		opts = append(opts, validation.WithTables(tables))
	}
	engine := validation.New(opts...)

	// Usecases
	validateSvc := usecase.NewValidateService(engine, store)
	generateSvc := usecase.NewGenerateService(validateSvc, stub.New(), store, tokencount.NewCounter(), cfg.GeneratorModel)

	srv := httpserver.NewServer(cfg, validateSvc, generateSvc, store.Ping, redisCheck)
	handler := app.BuildRouter(cfg, srv, limiter)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
