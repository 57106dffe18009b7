package ports

import (
	"context"
	"time"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
)

// CreateOrderInput carries the raw fields of an order creation request.
type CreateOrderInput struct {
	Company          string
	DistributorName  string
	DistributorEmail string
	OrderTypes       []string
	Quantity         float64
	ScheduledDate    time.Time
	// IdempotencyKey deduplicates durable creation requests. Ignored by the inline path.
	IdempotencyKey string
}

// Service exposes the order workflow use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrdersByDistributor(ctx context.Context, email string) ([]*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
