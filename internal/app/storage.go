// Package app assembles adapters from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clicktracker/internal/adapter/cache"
	"clicktracker/internal/adapter/memory"
	"clicktracker/internal/adapter/postgres"
	redisadapter "clicktracker/internal/adapter/redis"
	"clicktracker/internal/adapter/sqlite"
	"clicktracker/internal/config"
	"clicktracker/internal/config/configs"
	"clicktracker/internal/core/port"
	"clicktracker/internal/db"
)

// Storage holds the repositories selected by configuration. Close releases
// every connection opened by OpenStorage.
type Storage struct {
	Campaigns port.CampaignRepository
	Platforms port.PlatformRepository
	Admins    port.AdminRepository
	Clicks    port.ClickLog
	Counter   port.ClickCounter
	// Health lists the backends reported by the health endpoint.
	Health map[string]port.Pinger

	closers []func() error
}

// Close releases backends in reverse opening order.
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// OpenStorage connects the configured storage driver and, when requested,
// moves click counters to Redis. Campaign reads go through an in-process
// cache when Tracker.CacheTTL is positive.
func OpenStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *Storage, err error) {
	s := &Storage{Health: map[string]port.Pinger{}}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	switch cfg.Storage.Driver {
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })
		campaigns := postgres.NewCampaignRepository(pool)
		clicks := postgres.NewClickRepository(pool)
		s.Campaigns, s.Platforms = campaigns, campaigns
		s.Admins = postgres.NewAdminRepository(pool)
		s.Clicks, s.Counter = clicks, clicks
		s.Health["postgres"] = campaigns
	case configs.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		s.closers = append(s.closers, store.Close)
		s.Campaigns, s.Platforms, s.Admins = store, store, store
		s.Clicks, s.Counter = store, store
		s.Health["sqlite"] = store
	case configs.DriverMemory:
		logger.Warn("memory storage selected, data is lost on exit")
		store := memory.NewStore()
		s.Campaigns, s.Platforms, s.Admins = store, store, store
		s.Clicks, s.Counter = store, store
		s.Health["memory"] = store
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Storage.Counter == configs.CounterRedis {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		s.closers = append(s.closers, client.Close)
		counter := redisadapter.NewCounter(client, cfg.Redis.KeyPrefix)
		s.Counter = counter
		s.Health["redis"] = counter
	}

	if cfg.Tracker.CacheTTL > 0 {
		s.Campaigns = cache.NewCampaignCache(s.Campaigns, cfg.Tracker.CacheTTL)
	}

	logger.Info("storage ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("counter", cfg.Storage.Counter),
	)
	return s, nil
}
