package application

import (
	"context"
	"strings"
	"time"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

// Service enforces the order workflow rules before delegating to the store.
type Service struct {
	repo     ports.Repository
	now      func() time.Time
	location *time.Location
}

// Option customizes the service.
type Option func(*Service)

// WithClock overrides the time source used by the scheduling rule.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone whose midnight bounds "today".
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService wires the order workflow with its store.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, location: time.Local}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateOrder validates the request and persists a new pending order.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}
	if input.ScheduledDate.Before(s.startOfToday()) {
		return nil, mapError(ErrScheduledInPast)
	}
	order := domain.FromAttributes(domain.Attributes{
		Company:          input.Company,
		DistributorName:  input.DistributorName,
		DistributorEmail: input.DistributorEmail,
		OrderTypes:       input.OrderTypes,
		Quantity:         input.Quantity,
		ScheduledDate:    input.ScheduledDate,
	})
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetAllOrders lists every order by scheduled date.
func (s *Service) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

// GetOrdersByDistributor lists the orders created by one distributor.
func (s *Service) GetOrdersByDistributor(ctx context.Context, email string) ([]*domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Reason: ErrMissingDistributorEmail, Fields: map[string]string{"email": ErrMissingDistributorEmail.Error()}}
	}
	orders, err := s.repo.ListByDistributorEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

// GetOrderByID loads a single order. Malformed ids never reach the store.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// UpdateOrderStatus overwrites the status with any whitelisted value.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, mapError(err)
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	order, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// DeleteOrder permanently removes an order.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

// startOfToday truncates the current moment, not the scheduled date, so any time today passes.
func (s *Service) startOfToday() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

func validateCreateInput(input ports.CreateOrderInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Company) == "" {
		fields["company"] = domain.ErrEmptyCompany.Error()
	}
	if strings.TrimSpace(input.DistributorName) == "" {
		fields["distributorName"] = domain.ErrEmptyDistributorName.Error()
	}
	if strings.TrimSpace(input.DistributorEmail) == "" {
		fields["distributorEmail"] = domain.ErrEmptyDistributorEmail.Error()
	}
	if len(domain.NormalizeOrderTypes(input.OrderTypes)) == 0 {
		fields["orderTypes"] = domain.ErrEmptyOrderTypes.Error()
	}
	if input.Quantity == 0 {
		fields["quantity"] = "quantity is required"
	}
	if input.ScheduledDate.IsZero() {
		fields["scheduledDate"] = domain.ErrMissingScheduledDate.Error()
	}
	if len(fields) > 0 {
		return &ValidationError{Reason: ErrMissingFields, Fields: fields}
	}
	return nil
}

func checkID(id string) error {
	if !domain.ValidOrderID(id) {
		return &ValidationError{Reason: ports.ErrInvalidID, Fields: map[string]string{"id": ports.ErrInvalidID.Error()}}
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
