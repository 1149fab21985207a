// Package app wires configuration, storage, cache, services and the HTTP
// router into one handler. The server binary, the serverless entrypoint and
// the end-to-end tests all build through it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/wadjakorntonsri/go-link-hub/pkg/adapters/cache"
	"github.com/wadjakorntonsri/go-link-hub/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-link-hub/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-link-hub/pkg/config"
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/services"
	"github.com/wadjakorntonsri/go-link-hub/pkg/metrics"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

type App struct {
	Handler http.Handler
	Repo    *sqlite.SQLiteRepository
	Metrics *metrics.Metrics

	redis *redis.Client
}

// New opens the database and, when configured, Redis. reg receives the
// Prometheus collectors; nil means the default registry.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// Note: On Vercel, db.sqlite is ephemeral unless using a remote SQL/Turso URL in DATABASE_URL
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL, sqlite.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var snapshots ports.SnapshotCache = cache.Nop{}
	client, err := cache.Dial(ctx, cfg.RedisURL)
	if err != nil {
		repo.Close()
		return nil, err
	}
	if client != nil {
		snapshots = cache.NewRedis(client, cache.WithTTL(cfg.CacheTTL))
		logger.Info("hub snapshot cache enabled", "ttl", cfg.CacheTTL)
	}

	m := metrics.NewWithRegistry(reg)
	opts := []services.Option{
		services.WithLogger(logger),
		services.WithSnapshotCache(snapshots),
		services.WithMetrics(m),
		services.WithIPHashSalt(cfg.IPHashSalt),
	}
	hubService := services.NewHubService(repo, opts...)
	linkService := services.NewLinkService(repo, opts...)

	return &App{
		Handler: handler.NewRouter(cfg, hubService, linkService, logger),
		Repo:    repo,
		Metrics: m,
		redis:   client,
	}, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	return a.Repo.Close()
}
