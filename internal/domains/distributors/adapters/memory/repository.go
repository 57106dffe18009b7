package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// Repository is an in-memory distributor directory keyed by normalized email.
type Repository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.Distributor
	now     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{byEmail: map[string]*domain.Distributor{}, now: time.Now}
}

func (r *Repository) Create(_ context.Context, distributor *domain.Distributor) (*domain.Distributor, error) {
	if distributor == nil {
		return nil, errors.New("distributor is nil")
	}
	clone := distributor.Clone()
	clone.Email = domain.NormalizeEmail(clone.Email)
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[clone.Email]; exists {
		return nil, fmt.Errorf("%w: %s", ports.ErrDuplicateEmail, clone.Email)
	}
	if clone.ID == "" {
		clone.ID = domain.NewDistributorID()
	}
	now := r.now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.byEmail[clone.Email] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Distributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return d.Clone(), nil
}

// List returns distributors ordered by name then email.
func (r *Repository) List(_ context.Context) ([]*domain.Distributor, error) {
	r.mu.RLock()
	list := lo.Map(lo.Values(r.byEmail), func(d *domain.Distributor, _ int) *domain.Distributor {
		return d.Clone()
	})
	r.mu.RUnlock()
	slices.SortFunc(list, func(a, b *domain.Distributor) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	return list, nil
}

var _ ports.Repository = (*Repository)(nil)
