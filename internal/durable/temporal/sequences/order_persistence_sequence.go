package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/wastewise-api/internal/durable/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the activities needed to persist a collection order.
func RunOrderPersistenceSequence(ctx workflow.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "distributor", input.DistributorEmail)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{orderactivities.InvalidInputErrorType},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var order orderdomain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.PersistOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order persistence sequence failed", "distributor", input.DistributorEmail, "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence completed", "orderId", order.ID)
	return &order, nil
}
