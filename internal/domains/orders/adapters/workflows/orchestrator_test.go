package workflows

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	ordermemory "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/wastewise-api/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/Apurer/wastewise-api/internal/durable/temporal/workflows/orders"
)

func TestBuildOrderCreationWorkflowID_IdempotencyKeyIsDeterministic(t *testing.T) {
	input := ports.CreateOrderInput{DistributorEmail: "Bob@X.com", IdempotencyKey: " key-1 "}

	first := buildOrderCreationWorkflowID(input, "trace-a")
	second := buildOrderCreationWorkflowID(input, "trace-b")

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "order-creation-idem-"))
	assert.Len(t, strings.TrimPrefix(first, "order-creation-idem-"), 16)
}

func TestBuildOrderCreationWorkflowID_FallsBackToTrace(t *testing.T) {
	id := buildOrderCreationWorkflowID(ports.CreateOrderInput{DistributorEmail: " Bob@X.com"}, "abc")
	assert.Equal(t, "order-creation-bob@x.com-abc", id)
}

func TestWorkflowTraceComponent(t *testing.T) {
	assert.True(t, strings.HasPrefix(workflowTraceComponent(context.Background()), "fallback-"))

	traceID := oteltrace.TraceID{1, 2, 3}
	spanCtx := oteltrace.NewSpanContext(oteltrace.SpanContextConfig{TraceID: traceID, SpanID: oteltrace.SpanID{1}})
	ctx := oteltrace.ContextWithSpanContext(context.Background(), spanCtx)
	assert.Equal(t, traceID.String(), workflowTraceComponent(ctx))
}

func TestInlineOrderWorkflows_DelegatesToService(t *testing.T) {
	orchestrator := NewInlineOrderWorkflows(orderapp.NewService(ordermemory.NewRepository()))

	order, err := orchestrator.CreateOrder(context.Background(), ports.CreateOrderInput{
		Company:          "Acme",
		DistributorName:  "Bob",
		DistributorEmail: "bob@x.com",
		OrderTypes:       []string{"general"},
		Quantity:         5,
		ScheduledDate:    time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	_, err = orchestrator.CreateOrder(context.Background(), ports.CreateOrderInput{})
	require.ErrorIs(t, err, orderapp.ErrInvalidInput)
}

func TestInlineOrderWorkflows_NotConfigured(t *testing.T) {
	var orchestrator *InlineOrderWorkflows
	_, err := orchestrator.CreateOrder(context.Background(), ports.CreateOrderInput{})
	require.Error(t, err)
}

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newFixedService() ports.Service {
	return orderapp.NewService(ordermemory.NewRepository(),
		orderapp.WithClock(func() time.Time { return fixedNow }),
		orderapp.WithLocation(time.UTC),
	)
}

func validCreateInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Company:          "Acme",
		DistributorName:  "Bob",
		DistributorEmail: "bob@x.com",
		OrderTypes:       []string{"general"},
		Quantity:         5,
		ScheduledDate:    fixedNow.Add(24 * time.Hour),
	}
}

// runCreationWorkflow executes the real workflow and activity in the Temporal test environment
// and returns the workflow failure as the client would see it.
func runCreationWorkflow(t *testing.T, input ports.CreateOrderInput) error {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	activities := orderactivities.NewActivities(newFixedService())
	env.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})

	env.ExecuteWorkflow(orderworkflows.OrderCreationWorkflow, orderworkflows.OrderCreationWorkflowInput{Command: input})
	require.True(t, env.IsWorkflowCompleted())
	return env.GetWorkflowError()
}

func TestUnwrapWorkflowError_MatchesInlineErrors(t *testing.T) {
	past := validCreateInput()
	past.ScheduledDate = fixedNow.AddDate(0, 0, -2)
	missing := validCreateInput()
	missing.Company = ""
	missing.OrderTypes = nil

	tests := []struct {
		name  string
		input ports.CreateOrderInput
		check func(t *testing.T, err error)
	}{
		{"scheduled in past", past, func(t *testing.T, err error) {
			require.ErrorIs(t, err, orderapp.ErrScheduledInPast)
		}},
		{"missing fields", missing, func(t *testing.T, err error) {
			var validation *orderapp.ValidationError
			require.ErrorAs(t, err, &validation)
			require.ErrorIs(t, err, orderapp.ErrMissingFields)
			assert.Equal(t, []string{"company", "orderTypes"}, sortedKeys(validation.Fields))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, inlineErr := NewInlineOrderWorkflows(newFixedService()).CreateOrder(context.Background(), tt.input)
			require.Error(t, inlineErr)

			workflowErr := runCreationWorkflow(t, tt.input)
			require.Error(t, workflowErr)
			durableErr := unwrapWorkflowError(workflowErr)

			require.ErrorIs(t, durableErr, orderapp.ErrInvalidInput)
			assert.Equal(t, inlineErr.Error(), durableErr.Error())
			assert.Equal(t, 1, strings.Count(durableErr.Error(), orderapp.ErrInvalidInput.Error()))
			tt.check(t, durableErr)
		})
	}
}

func TestUnwrapWorkflowError_WithoutDetails(t *testing.T) {
	err := temporal.NewNonRetryableApplicationError(
		"invalid order input: order status must be one of: pending, accepted, completed, not completed",
		orderworkflows.InvalidInputErrorType,
		nil,
	)

	unwrapped := unwrapWorkflowError(err)

	require.ErrorIs(t, unwrapped, orderapp.ErrInvalidInput)
	assert.Equal(t, "invalid order input: order status must be one of: pending, accepted, completed, not completed", unwrapped.Error())
}

func TestUnwrapWorkflowError_PassesOtherFailuresThrough(t *testing.T) {
	original := temporal.NewApplicationError("database unavailable", "StorageFailure")
	assert.Same(t, original, unwrapWorkflowError(original))
}

func TestTemporalOrderWorkflows_CreateOrder(t *testing.T) {
	t.Run("returns the persisted order", func(t *testing.T) {
		temporalClient := mocks.NewClient(t)
		run := mocks.NewWorkflowRun(t)
		temporalClient.On("ExecuteWorkflow",
			mock.Anything,
			mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
				return opts.TaskQueue == orderworkflows.OrderCreationTaskQueue && strings.HasPrefix(opts.ID, "order-creation-idem-")
			}),
			orderworkflows.OrderCreationWorkflowName,
			mock.Anything,
		).Return(run, nil)
		run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			order := args.Get(1).(*orderdomain.Order)
			order.ID = "6f1c2a54-8d3e-4b7a-9c11-2f0d5e8a7b31"
			order.Status = orderdomain.StatusPending
		}).Return(nil)

		input := validCreateInput()
		input.IdempotencyKey = "req-1"
		order, err := NewTemporalOrderWorkflows(temporalClient).CreateOrder(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "6f1c2a54-8d3e-4b7a-9c11-2f0d5e8a7b31", order.ID)
	})

	t.Run("rebuilds validation failures", func(t *testing.T) {
		temporalClient := mocks.NewClient(t)
		run := mocks.NewWorkflowRun(t)
		detail := orderapp.DescribeInputError(&orderapp.ValidationError{
			Reason: orderapp.ErrMissingFields,
			Fields: map[string]string{"company": orderdomain.ErrEmptyCompany.Error()},
		})
		failure := temporal.NewNonRetryableApplicationError(detail.Message, orderworkflows.InvalidInputErrorType, nil, detail)
		temporalClient.On("ExecuteWorkflow", mock.Anything, mock.Anything, orderworkflows.OrderCreationWorkflowName, mock.Anything).Return(run, nil)
		run.On("Get", mock.Anything, mock.Anything).Return(failure)

		_, err := NewTemporalOrderWorkflows(temporalClient).CreateOrder(context.Background(), validCreateInput())

		var validation *orderapp.ValidationError
		require.ErrorAs(t, err, &validation)
		require.ErrorIs(t, err, orderapp.ErrMissingFields)
		assert.Equal(t, detail.Fields, validation.Fields)
	})

	t.Run("surfaces start failures", func(t *testing.T) {
		temporalClient := mocks.NewClient(t)
		temporalClient.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("frontend unavailable"))

		_, err := NewTemporalOrderWorkflows(temporalClient).CreateOrder(context.Background(), validCreateInput())

		require.EqualError(t, err, "frontend unavailable")
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
