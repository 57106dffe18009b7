package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}, now: time.Now}
}

// WithClock overrides the timestamp source, mainly for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	if now != nil {
		r.now = now
	}
	return r
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	clone.DistributorEmail = domain.NormalizeEmail(clone.DistributorEmail)
	if clone.Status == "" {
		clone.Status = domain.StatusPending
	}
	if err := clone.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
	}
	if clone.ID == "" {
		clone.ID = domain.NewOrderID()
	} else if !domain.ValidOrderID(clone.ID) {
		return nil, ports.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[clone.ID]; exists {
		return nil, fmt.Errorf("%w: duplicate id %s", ports.ErrConstraintViolation, clone.ID)
	}
	now := r.now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(lo.Values(r.orders)), nil
}

func (r *Repository) ListByDistributorEmail(_ context.Context, email string) ([]*domain.Order, error) {
	email = domain.NormalizeEmail(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := lo.Filter(lo.Values(r.orders), func(o *domain.Order, _ int) bool {
		return strings.EqualFold(o.DistributorEmail, email)
	})
	return r.sorted(matches), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if !domain.ValidOrderID(id) {
		return nil, ports.ErrInvalidID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Order, error) {
	if !domain.ValidOrderID(id) {
		return nil, ports.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if err := order.UpdateStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
	}
	order.UpdatedAt = r.now()
	return order.Clone(), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	if !domain.ValidOrderID(id) {
		return ports.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// sorted clones the orders and sorts them by scheduled date, breaking ties by creation time.
func (r *Repository) sorted(orders []*domain.Order) []*domain.Order {
	list := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		list = append(list, order.Clone())
	}
	slices.SortStableFunc(list, func(a, b *domain.Order) int {
		if c := a.ScheduledDate.Compare(b.ScheduledDate); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}
