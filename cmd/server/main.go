package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tamarindi/team-stats/internal/config"
	"github.com/tamarindi/team-stats/internal/handlers"
	"github.com/tamarindi/team-stats/internal/logic"
	"github.com/tamarindi/team-stats/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The document is loaded once, before the first request. A failed load
	// is not fatal: every view renders its empty-state row.
	store := logic.NewStatsStore(logic.NewSourceFetcher(cfg.FetchTimeout), logger)
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.FetchTimeout)
	if err := store.LoadFrom(loadCtx, cfg.StatsSource); err != nil {
		sugar.Warnw("Serving empty tables", "source", cfg.StatsSource, "error", err)
	}
	cancelLoad()

	handlerCfg := handlers.Config{
		Stats:         store,
		Logger:        logger,
		ClubName:      cfg.ClubName,
		DefaultSeason: cfg.DefaultSeason,
	}

	var pool *worker.Pool
	if cfg.CacheEnabled() {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			sugar.Warnw("Redis unreachable, cache reads will miss", "error", err)
		}

		pool = worker.NewPool(worker.PoolConfig{
			WorkerCount:   cfg.WorkerCount,
			QueueSize:     cfg.QueueSize,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			TTL:           cfg.CacheTTL,
			Redis:         rdb,
			Logger:        logger,
		})
		// The pool outlives the signal context: requests still draining in
		// srv.Shutdown may enqueue, and Stop flushes them.
		pool.Start(context.Background())
		defer pool.Stop()

		handlerCfg.Redis = rdb
		handlerCfg.CacheQueue = pool
	}

	h := handlers.New(handlerCfg)

	if pool != nil && store.Loaded() {
		seasons := make([]string, 0)
		for _, s := range store.Seasons() {
			seasons = append(seasons, s.Key)
		}
		if err := worker.Warm(ctx, seasons, cfg.WorkerCount, h.WarmSeason); err != nil {
			sugar.Warnw("Cache warm-up incomplete", "error", err)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(handlers.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
			ImagesDir:      cfg.ImagesDir,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("HTTP server listening", "addr", srv.Addr, "env", cfg.Env, "cache", cfg.CacheEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
