package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradesim/platform/internal/api"
	"github.com/tradesim/platform/internal/api/handler"
	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
	"github.com/tradesim/platform/internal/core/service"
	"github.com/tradesim/platform/internal/feed"
	"github.com/tradesim/platform/internal/fixtures"
	"github.com/tradesim/platform/internal/infrastructure/config"
	"github.com/tradesim/platform/internal/infrastructure/storage/memory"
	redisstore "github.com/tradesim/platform/internal/infrastructure/storage/redis"
	"github.com/tradesim/platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// storage is a workspace store factory that can report its health.
type storage interface {
	ports.KeyValueStoreFactory
	handler.Pinger
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Run the HTTP server. Configuration is read from the environment (PORT, STORAGE, REDIS_ADDR, ...).",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	data, err := fixtures.Load()
	if err != nil {
		return err
	}

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	workspaces := service.NewWorkspaceManager(store, data.SeedSimulations, logger.Component(log, "workspace"))
	workspaces.IdleTTL = cfg.Redis.TTL
	workspaces.OnCreate = func(_ *service.Workspace, restored bool) {
		result := "empty"
		if restored {
			result = "restored"
		}
		metrics.SessionRestoresTotal.WithLabelValues(result).Inc()
		metrics.WorkspacesActive.Inc()
	}
	workspaces.OnEvict = func(*service.Workspace) { metrics.WorkspacesActive.Dec() }

	e := api.NewRouter(api.Deps{
		Log:           log,
		SessionSecret: cfg.SessionSecret,
		Workspaces:    workspaces,
		Fixtures:      data,
		LoginFlow:     service.NewLoginFlow(cfg.LoginDelay, logger.Component(log, "login")),
		Feed: feed.NewStreamer(func() []domain.Quote { return data.Market },
			cfg.Feed.Interval, cfg.Feed.Seed, logger.Component(log, "feed")),
		Ready: map[string]handler.Pinger{"storage": store},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage, func(), error) {
	if cfg.Storage == config.StorageMemory {
		return memory.NewFactory(), func() {}, nil
	}

	client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return nil, nil, err
	}
	return redisstore.NewFactory(client, cfg.Redis.TTL), func() { _ = client.Close() }, nil
}
