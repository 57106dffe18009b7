package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Apurer/wastewise-api/internal/app/api"
	distributorpostgres "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/persistence/postgres"
	platformobservability "github.com/Apurer/wastewise-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/wastewise-api/internal/platform/postgres"
)

// session-purger deletes expired distributor sessions once and exits. It is meant for a
// scheduler such as a Kubernetes CronJob when the API's in-process purge job is disabled.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := api.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, "wastewise-session-purger", platformobservability.Options{
		Environment: cfg.Environment,
		LogLevel:    platformobservability.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()
	logger := instruments.Logger

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Error("POSTGRES_DSN is required to purge sessions")
		os.Exit(1)
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Error("failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	purged, err := distributorpostgres.NewSessionStore(db).PurgeExpired(ctx)
	if err != nil {
		logger.Error("session purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("expired sessions purged", slog.Int64("count", purged))
}
