package ports

import (
	"context"
	"errors"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrInvalidID is returned when an identifier cannot be interpreted as a store key.
	ErrInvalidID = errors.New("invalid order id")
	// ErrConstraintViolation wraps records rejected by the store schema.
	ErrConstraintViolation = errors.New("order violates storage constraints")
)

// Repository persists orders. List queries return records ordered by scheduled date ascending.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByDistributorEmail(ctx context.Context, email string) ([]*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
