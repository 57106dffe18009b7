package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/wastewise-api/internal/app/api"
	orderactivities "github.com/Apurer/wastewise-api/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/Apurer/wastewise-api/internal/durable/temporal/workflows/orders"
	ordermemory "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/wastewise-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/wastewise-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "wastewise-worker"
	if err := api.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.Options{
		Environment: cfg.Environment,
		LogLevel:    platformobservability.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
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
	var repo orderports.Repository = ordermemory.NewRepository()
	if db != nil {
		repo = orderpostgres.NewRepository(db)
		logger.Info("worker order repository configured with postgres")
	} else {
		logger.Warn("worker persisting orders in memory; the API will not see them")
	}
	orderService := orderobs.New(
		orderapp.NewService(repo, orderapp.WithLocation(cfg.Location)),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	activities := orderactivities.NewActivities(orderService)

	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer("temporal-worker"),
	})
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderCreationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderCreationWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
