package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "clicktracker/internal/adapter/http"
	natsadapter "clicktracker/internal/adapter/nats"
	"clicktracker/internal/adapter/usecase"
	"clicktracker/internal/app"
	"clicktracker/internal/config"
	"clicktracker/internal/core/port"
	"clicktracker/internal/db"
)

// main loads configuration, opens the configured storage, wires the use
// cases and serves HTTP until SIGINT or SIGTERM. Pending visits are
// recorded before storage is closed.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	seed := flag.Bool("seed", false, "create default platforms and demo campaigns when the store is empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("storage close error", slog.Any("error", err))
		}
	}()

	if *seed {
		if err = db.Seed(ctx, store.Platforms, store.Campaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seed data applied")
	}

	if cfg.Admin.PasswordHash != "" {
		if err = usecase.EnsureAdmin(ctx, store.Admins, cfg.Admin.Name, cfg.Admin.PasswordHash); err != nil {
			logger.Error("admin setup error", slog.Any("error", err))
			return
		}
	} else {
		logger.Warn("ADMIN_PASSWORD_HASH is empty, admin login only works for admins already stored")
	}

	var skew port.SkewReporter
	if cfg.NATS.URL != "" {
		nc, err := natsadapter.Connect(cfg.NATS.URL, logger)
		if err != nil {
			logger.Error("nats connection error", slog.Any("error", err))
			return
		}
		defer nc.Close()
		skew = natsadapter.NewSkewPublisher(nc, cfg.NATS.SkewSubject)
	}

	tracker := usecase.NewTrackerUseCase(store.Campaigns, store.Clicks, store.Counter, skew, logger,
		usecase.TrackerOptions{
			RedirectInactive: cfg.Tracker.RedirectInactive,
			RecordTimeout:    cfg.Tracker.RecordTimeout,
		})

	svc := httpadapter.Services{
		Tracker:    tracker,
		Campaigns:  usecase.NewCampaignUseCase(store.Campaigns, store.Platforms, store.Counter, logger),
		Auth:       usecase.NewAuthUseCase(store.Admins, cfg.Admin.JWTSecret, cfg.Admin.SessionTTL, logger),
		Reconciler: usecase.NewReconcileUseCase(store.Clicks, store.Counter, logger, cfg.Tracker.ReconcileSettle),
		Health:     store.Health,
	}
	var recorder *usecase.VisitRecorder
	if cfg.Tracker.AsyncRecord {
		recorder = usecase.NewVisitRecorder(tracker, cfg.Tracker.RecordWorkers, cfg.Tracker.RecordQueueSize, logger)
		svc.Visits = recorder
	}

	handler := httpadapter.NewHandler(svc, httpadapter.Options{
		DefaultURL:        cfg.Tracker.DefaultURL.String(),
		TrustForwardedFor: cfg.Tracker.TrustForwardedFor,
		CookieSecure:      cfg.Admin.CookieSecure,
	}, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if recorder != nil {
		recorder.Close()
		logger.Info("visit recorder drained", slog.Int64("dropped", recorder.Dropped()))
	}
}
