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

	"food-tracker/config"
	httpapi "food-tracker/catalog-svc/internal/api/http"
	"food-tracker/catalog-svc/internal/service"
	"food-tracker/catalog-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) error {
	db, err := config.OpenPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrConnection, err)
	}
	defer db.Close()
	logger.Info("database connection pool established")

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	var cache service.AggregateCache
	var redisCache *storage.RedisCache
	if cfg.RedisAddr != "" {
		rdb, err := config.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rdb.Close()
		redisCache = storage.NewRedisCache(rdb, cfg.CacheTTL)
		cache = redisCache
		logger.Infow("aggregate cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	var replicator service.Replicator = storage.LocalReplicator{}
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		replicator = storage.NewKafkaReplicator(writer)
		logger.Infow("replica sync enabled", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)

		if redisCache != nil {
			reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID)
			defer reader.Close()
			go service.NewChangeConsumer(reader, redisCache, logger).Start(ctx)
		}
	}

	catalog := service.NewCatalogService(repo, cache, replicator, service.DefaultQRGenerator{Size: 256}, logger)
	handler := httpapi.NewHandler(catalog)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("catalog service starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
