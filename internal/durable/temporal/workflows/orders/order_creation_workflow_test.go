package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/wastewise-api/internal/durable/temporal/activities/orders"
)

func TestOrderCreationWorkflow_ReturnsPersistedOrder(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
			return &orderdomain.Order{ID: "11111111-1111-1111-1111-111111111111", Company: input.Company, Status: orderdomain.StatusPending}, nil
		},
		activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName},
	)

	env.ExecuteWorkflow(OrderCreationWorkflow, OrderCreationWorkflowInput{
		Command: orderports.CreateOrderInput{Company: "Acme", ScheduledDate: time.Now()},
		TraceID: "trace",
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var order orderdomain.Order
	require.NoError(t, env.GetWorkflowResult(&order))
	assert.Equal(t, "Acme", order.Company)
	assert.Equal(t, orderdomain.StatusPending, order.Status)
}

func TestOrderCreationWorkflow_DoesNotRetryInvalidInput(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	attempts := 0
	env.RegisterActivityWithOptions(
		func(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
			attempts++
			return nil, temporal.NewNonRetryableApplicationError("company is required", InvalidInputErrorType, errors.New("invalid"))
		},
		activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName},
	)

	env.ExecuteWorkflow(OrderCreationWorkflow, OrderCreationWorkflowInput{})

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, InvalidInputErrorType, appErr.Type())
	assert.Equal(t, 1, attempts)
}
