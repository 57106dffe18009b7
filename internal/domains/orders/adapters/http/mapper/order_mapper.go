package mapper

import (
	"time"

	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

// Order represents the transport-layer shape used by the handlers.
type Order struct {
	ID               string
	Company          string
	DistributorName  string
	DistributorEmail string
	OrderTypes       []string
	Quantity         float64
	ScheduledDate    time.Time
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ToCreateInput converts a transport order into the creation input of the order service.
func ToCreateInput(order Order, idempotencyKey string) orderports.CreateOrderInput {
	return orderports.CreateOrderInput{
		Company:          order.Company,
		DistributorName:  order.DistributorName,
		DistributorEmail: order.DistributorEmail,
		OrderTypes:       append([]string(nil), order.OrderTypes...),
		Quantity:         order.Quantity,
		ScheduledDate:    order.ScheduledDate,
		IdempotencyKey:   idempotencyKey,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:               order.ID,
		Company:          order.Company,
		DistributorName:  order.DistributorName,
		DistributorEmail: order.DistributorEmail,
		OrderTypes:       append([]string(nil), order.OrderTypes...),
		Quantity:         order.Quantity,
		ScheduledDate:    order.ScheduledDate,
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

// FromDomainOrders converts a list, keeping an empty slice for empty input.
func FromDomainOrders(orders []*orderdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
