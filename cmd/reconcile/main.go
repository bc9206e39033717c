// Command reconcile recomputes click counters from the click log once and
// exits. Configuration is read from the same environment as the server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clicktracker/internal/adapter/usecase"
	"clicktracker/internal/app"
	"clicktracker/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	campaign := flag.Int64("campaign", 0, "reconcile a single campaign id; 0 reconciles all")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	// Reads must see the store, not a stale cache.
	cfg.Tracker.CacheTTL = 0
	logger := cfg.Log.New(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return 1
	}
	defer store.Close()

	var target *int64
	if *campaign > 0 {
		target = campaign
	}
	corrections, err := usecase.NewReconcileUseCase(store.Clicks, store.Counter, logger, cfg.Tracker.ReconcileSettle).Reconcile(ctx, target)
	if err != nil {
		logger.Error("reconcile failed", slog.Any("error", err))
		return 1
	}
	for _, c := range corrections {
		logger.Info("counter corrected",
			slog.Int64("campaign_id", c.CampaignID),
			slog.Int64("previous", c.Previous),
			slog.Int64("actual", c.Actual),
		)
	}
	logger.Info("reconcile finished", slog.Int("corrections", len(corrections)))
	return 0
}
