package ports

import (
	"context"
	"errors"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
)

var (
	ErrNotFound = errors.New("distributor not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("distributor email already registered")
)

// Repository persists distributors keyed by normalized email.
type Repository interface {
	Create(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Distributor, error)
	List(ctx context.Context) ([]*domain.Distributor, error)
}
