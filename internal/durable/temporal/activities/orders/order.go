package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

const (
	// PersistOrderActivityName persists a new collection order.
	PersistOrderActivityName = "orders.activities.PersistOrder"
	// InvalidInputErrorType tags application errors that must not be retried.
	InvalidInputErrorType = "InvalidOrderInput"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PersistOrder stores a new order. Validation failures are returned as non-retryable errors
// whose details hold an orderapp.InputErrorDetail.
func (a *Activities) PersistOrder(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order persist activity not initialized", "distributor", input.DistributorEmail)
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "distributor", input.DistributorEmail)
	order, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		logger.Error("PersistOrder activity failed", "distributor", input.DistributorEmail, "error", err)
		if errors.Is(err, orderapp.ErrInvalidInput) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), InvalidInputErrorType, err, orderapp.DescribeInputError(err))
		}
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", order.ID)
	return order, nil
}
