package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordermemory "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

// countingRepo records how often each store operation is reached.
type countingRepo struct {
	ports.Repository
	creates, gets, updates, deletes int
}

func (c *countingRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	c.creates++
	return c.Repository.Create(ctx, order)
}

func (c *countingRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func (c *countingRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	c.updates++
	return c.Repository.UpdateStatus(ctx, id, status)
}

func (c *countingRepo) Delete(ctx context.Context, id string) error {
	c.deletes++
	return c.Repository.Delete(ctx, id)
}

var today = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

func newTestService() (*Service, *countingRepo) {
	repo := &countingRepo{Repository: ordermemory.NewRepository()}
	svc := NewService(repo,
		WithClock(func() time.Time { return today }),
		WithLocation(time.UTC),
	)
	return svc, repo
}

func validInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Company:          "Acme",
		DistributorName:  "Bob",
		DistributorEmail: "Bob@X.com",
		OrderTypes:       []string{"general"},
		Quantity:         10,
		ScheduledDate:    today,
	}
}

func TestCreateOrder_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*ports.CreateOrderInput)
	}{
		{"company", "company", func(in *ports.CreateOrderInput) { in.Company = "" }},
		{"distributor name", "distributorName", func(in *ports.CreateOrderInput) { in.DistributorName = " " }},
		{"distributor email", "distributorEmail", func(in *ports.CreateOrderInput) { in.DistributorEmail = "" }},
		{"nil order types", "orderTypes", func(in *ports.CreateOrderInput) { in.OrderTypes = nil }},
		{"empty order types", "orderTypes", func(in *ports.CreateOrderInput) { in.OrderTypes = []string{} }},
		{"quantity", "quantity", func(in *ports.CreateOrderInput) { in.Quantity = 0 }},
		{"scheduled date", "scheduledDate", func(in *ports.CreateOrderInput) { in.ScheduledDate = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateOrder(context.Background(), input)
			require.ErrorIs(t, err, ErrInvalidInput)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Zero(t, repo.creates)
		})
	}
}

func TestCreateOrder_DateBoundary(t *testing.T) {
	startOfDay := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{"start of today", startOfDay, false},
		{"earlier today than now", startOfDay.Add(time.Hour), false},
		{"late today", startOfDay.Add(23*time.Hour + 59*time.Minute), false},
		{"tomorrow", startOfDay.AddDate(0, 0, 1), false},
		{"yesterday", startOfDay.AddDate(0, 0, -1), true},
		{"one nanosecond before today", startOfDay.Add(-time.Nanosecond), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			input := validInput()
			input.ScheduledDate = tt.date

			_, err := svc.CreateOrder(context.Background(), input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				require.ErrorIs(t, err, ErrScheduledInPast)
				assert.Zero(t, repo.creates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.creates)
		})
	}
}

func TestCreateOrder_StartOfDayUsesConfiguredLocation(t *testing.T) {
	colombo := time.FixedZone("Asia/Colombo", 5*3600+1800)
	// 20:00 UTC on the 16th is already the 17th in Colombo.
	now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	svc := NewService(ordermemory.NewRepository(), WithClock(func() time.Time { return now }), WithLocation(colombo))

	input := validInput()
	input.ScheduledDate = time.Date(2026, 10, 16, 12, 0, 0, 0, colombo)
	_, err := svc.CreateOrder(context.Background(), input)
	require.ErrorIs(t, err, ErrScheduledInPast)

	input.ScheduledDate = time.Date(2026, 10, 17, 0, 0, 0, 0, colombo)
	_, err = svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
}

func TestCreateOrder_NegativeQuantityRejectedByStore(t *testing.T) {
	svc, repo := newTestService()
	input := validInput()
	input.Quantity = -1

	_, err := svc.CreateOrder(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ports.ErrConstraintViolation)
	assert.Equal(t, 1, repo.creates)

	all, err := svc.GetAllOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateOrderStatus_Whitelist(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	created, err := svc.CreateOrder(ctx, validInput())
	require.NoError(t, err)

	for _, status := range []string{"accepted", "completed", "pending", "not completed"} {
		updated, err := svc.UpdateOrderStatus(ctx, created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, domain.Status(status), updated.Status)
	}

	for _, status := range []string{"", "done", "Accepted", "cancelled", " accepted", "completed\n", "\tpending "} {
		_, err := svc.UpdateOrderStatus(ctx, created.ID, status)
		require.ErrorIs(t, err, ErrInvalidInput, "status %q", status)
		require.ErrorIs(t, err, domain.ErrInvalidStatus, "status %q", status)
	}
	assert.Equal(t, 4, repo.updates)

	stored, err := svc.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotCompleted, stored.Status)
}

func TestGetOrderByID_IDGate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.GetOrderByID(ctx, "not-a-valid-id")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.gets)

	_, err = svc.GetOrderByID(ctx, domain.NewOrderID())
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, 1, repo.gets)
}

func TestUpdateAndDelete_ValidateIDShape(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateOrderStatus(ctx, "bad", "accepted")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, svc.DeleteOrder(ctx, "bad"), ErrInvalidInput)
	assert.Zero(t, repo.updates)
	assert.Zero(t, repo.deletes)

	require.ErrorIs(t, svc.DeleteOrder(ctx, domain.NewOrderID()), ports.ErrNotFound)
}

func TestGetOrdersByDistributor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetOrdersByDistributor(ctx, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	mine, err := svc.CreateOrder(ctx, validInput())
	require.NoError(t, err)
	other := validInput()
	other.DistributorEmail = "alice@y.com"
	_, err = svc.CreateOrder(ctx, other)
	require.NoError(t, err)

	list, err := svc.GetOrdersByDistributor(ctx, "BOB@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestOrderLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", created.DistributorEmail)
	assert.Equal(t, domain.StatusPending, created.Status)

	accepted, err := svc.UpdateOrderStatus(ctx, created.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, accepted.Status)

	list, err := svc.GetOrdersByDistributor(ctx, "bob@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, svc.DeleteOrder(ctx, created.ID))
	_, err = svc.GetOrderByID(ctx, created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
