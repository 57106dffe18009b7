package api

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

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	wasteserver "github.com/Apurer/wastewise-api/go"

	distributormemory "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/memory"
	distributorobs "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/observability"
	distributorpostgres "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/persistence/postgres"
	distributorredis "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/redis"
	distributorapp "github.com/Apurer/wastewise-api/internal/domains/distributors/application"
	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
	locationapp "github.com/Apurer/wastewise-api/internal/domains/locations/application"
	ordermemory "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/persistence/postgres"
	orderworkflows "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	"github.com/Apurer/wastewise-api/internal/jobs"
	platformobservability "github.com/Apurer/wastewise-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/wastewise-api/internal/platform/postgres"
	platformredis "github.com/Apurer/wastewise-api/internal/platform/redis"
)

const serviceName = "wastewise-api"

// Run boots the collection orders HTTP API with observability, stores, and workflows wired.
// It returns when ctx is cancelled or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context, cfg Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.Options{
		Environment: cfg.Environment,
		LogLevel:    platformobservability.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectAndMigrate(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()

	orderService := orderobs.New(
		orderapp.NewService(buildOrderRepository(db, logger), orderapp.WithLocation(cfg.Location)),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	var orderWorkflows orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, creating orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	sessions, cleanupSessions := buildSessionStore(ctx, cfg, db, logger)
	defer cleanupSessions()
	if purger, ok := sessions.(distributorports.SessionPurger); ok && cfg.SessionPurgeInterval > 0 {
		job := jobs.NewSessionPurgeJob(purger, cfg.SessionPurgeInterval, logger)
		if err := job.Start(); err != nil {
			return fmt.Errorf("failed to start session purge job: %w", err)
		}
		defer job.Stop()
	}
	distributorService := distributorobs.New(
		distributorapp.NewService(buildDistributorRepository(db), sessions, distributorapp.WithSessionTTL(cfg.SessionTTL)),
		distributorobs.WithLogger(logger),
		distributorobs.WithTracer(instruments.Tracer("internal.distributors.application")),
		distributorobs.WithMeter(instruments.Meter("internal.distributors.application")),
	)

	handlers := wasteserver.ApiHandleFunctions{
		OrderAPI:       wasteserver.NewOrderAPI(orderService, orderWorkflows, cfg.Location),
		DistributorAPI: wasteserver.NewDistributorAPI(distributorService),
		LocationAPI:    wasteserver.NewLocationAPI(locationapp.NewService(nil)),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	router := wasteserver.NewRouterWithGinEngine(engine, handlers)

	server := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("WasteWise API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("WasteWise API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down WasteWise API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) orderports.Repository {
	if db == nil {
		return ordermemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderpostgres.NewRepository(db)
}

func buildDistributorRepository(db *gorm.DB) distributorports.Repository {
	if db == nil {
		return distributormemory.NewRepository()
	}
	return distributorpostgres.NewRepository(db)
}

// buildSessionStore prefers Redis, then Postgres, then memory.
func buildSessionStore(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (distributorports.SessionStore, func()) {
	redisClient, cleanup := platformredis.ConnectOrFallback(ctx, platformredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	if redisClient != nil {
		logger.Info("distributor sessions stored in redis")
		return distributorredis.NewSessionStore(redisClient), cleanup
	}
	if db != nil {
		logger.Info("distributor sessions stored in postgres")
		return distributorpostgres.NewSessionStore(db), func() {}
	}
	logger.Warn("distributor sessions kept in memory")
	return distributormemory.NewSessionStore(), func() {}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
