package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	ordermemory "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

func TestService_RecordsSpansLogsAndMetrics(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	svc := New(orderapp.NewService(ordermemory.NewRepository()),
		WithLogger(logger),
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
	)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, orderports.CreateOrderInput{
		Company:          "Acme",
		DistributorName:  "Bob",
		DistributorEmail: "bob@x.com",
		OrderTypes:       []string{"general"},
		Quantity:         10,
		ScheduledDate:    time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(ctx, created.ID, "bogus")
	require.ErrorIs(t, err, orderapp.ErrInvalidInput)

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "OrderService.CreateOrder", ended[0].Name())
	assert.Equal(t, "OrderService.UpdateOrderStatus", ended[1].Name())
	assert.Equal(t, "Error", ended[1].Status().Code.String())

	assert.Contains(t, logs.String(), "order created")
	assert.Contains(t, logs.String(), "failed to update order status")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["orders.service.created"])
	assert.True(t, names["orders.service.quantity_kg"])
}
