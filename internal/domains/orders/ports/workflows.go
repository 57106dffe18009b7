package ports

import (
	"context"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator runs order creation either durably or inline.
type WorkflowOrchestrator interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
}
