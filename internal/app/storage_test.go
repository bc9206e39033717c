package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/adapter/cache"
	"clicktracker/internal/adapter/memory"
	"clicktracker/internal/adapter/sqlite"
	"clicktracker/internal/config"
	"clicktracker/internal/config/configs"
	"clicktracker/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStorage_Memory(t *testing.T) {
	var cfg config.Config
	cfg.Storage = configs.Storage{Driver: configs.DriverMemory, Counter: configs.CounterStore}

	s, err := OpenStorage(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &memory.Store{}, s.Campaigns)
	assert.Same(t, s.Clicks, s.Counter)
	assert.Contains(t, s.Health, "memory")
}

func TestOpenStorage_SQLiteWithCache(t *testing.T) {
	var cfg config.Config
	cfg.Storage = configs.Storage{Driver: configs.DriverSQLite, Counter: configs.CounterStore}
	cfg.SQLite.DSN = ":memory:"
	cfg.Tracker.CacheTTL = time.Minute

	ctx := context.Background()
	s, err := OpenStorage(ctx, cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &cache.CampaignCache{}, s.Campaigns)
	assert.IsType(t, &sqlite.Store{}, s.Platforms)

	c := &domain.Campaign{Name: "wired", DestinationURL: "https://wired.example.com", Active: true}
	require.NoError(t, s.Campaigns.CreateCampaign(ctx, c))
	n, err := s.Counter.IncrementCounter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, s.Health["sqlite"].Ping(ctx))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Storage.Driver = "mongo"
	_, err := OpenStorage(context.Background(), cfg, discardLogger())
	assert.ErrorContains(t, err, "mongo")
}
