package orders

import (
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/wastewise-api/internal/durable/temporal/activities/orders"
	"github.com/Apurer/wastewise-api/internal/durable/temporal/sequences"
)

const (
	// OrderCreationWorkflowName is the public identifier for registering the workflow.
	OrderCreationWorkflowName = "orders.workflows.Creation"
	// OrderCreationTaskQueue is the queue consumed by the worker processing order workflows.
	OrderCreationTaskQueue = "ORDER_CREATION"
	// InvalidInputErrorType re-exports the activity error type for callers of the workflow.
	InvalidInputErrorType = orderactivities.InvalidInputErrorType
)

// OrderCreationWorkflowInput captures the payload required to schedule a new order.
type OrderCreationWorkflowInput struct {
	Command orderports.CreateOrderInput
	TraceID string
}

// OrderCreationWorkflow orchestrates the activities needed to persist an order.
func OrderCreationWorkflow(ctx workflow.Context, input OrderCreationWorkflowInput) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	email := input.Command.DistributorEmail
	logger.Info("OrderCreationWorkflow started", withTraceID(input.TraceID, "distributor", email)...)
	order, err := sequences.RunOrderPersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("OrderCreationWorkflow failed", withTraceID(input.TraceID, "distributor", email, "error", err)...)
		return nil, err
	}
	logger.Info("OrderCreationWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
