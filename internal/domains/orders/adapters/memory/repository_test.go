package memory

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

var wasteTypes = []string{"general", "plastic", "paper", "glass", "organic", "e-waste"}

func randomOrder(email string) *domain.Order {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.FromAttributes(domain.Attributes{
		Company:          gofakeit.Company(),
		DistributorName:  gofakeit.Name(),
		DistributorEmail: email,
		OrderTypes:       []string{gofakeit.RandomString(wasteTypes)},
		Quantity:         gofakeit.Float64Range(1, 500),
		ScheduledDate:    gofakeit.DateRange(start, start.AddDate(0, 6, 0)),
	})
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepository().WithClock(func() time.Time { return fixed })

	saved, err := repo.Create(context.Background(), randomOrder("Bob@X.com"))
	require.NoError(t, err)

	assert.True(t, domain.ValidOrderID(saved.ID))
	assert.Equal(t, "bob@x.com", saved.DistributorEmail)
	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.Equal(t, fixed, saved.CreatedAt)
	assert.Equal(t, fixed, saved.UpdatedAt)

	fetched, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(saved, fetched); diff != "" {
		t.Fatalf("fetched order mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_RejectsConstraintViolations(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for _, quantity := range []float64{0, -5} {
		order := randomOrder("bob@x.com")
		order.Quantity = quantity
		_, err := repo.Create(ctx, order)
		require.ErrorIs(t, err, ports.ErrConstraintViolation)
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	order := randomOrder("bob@x.com")
	order.OrderTypes = nil
	_, err := repo.Create(ctx, order)
	require.ErrorIs(t, err, domain.ErrEmptyOrderTypes)

	order = randomOrder("bob@x.com")
	order.Status = "archived"
	_, err = repo.Create(ctx, order)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_OrderedByScheduledDate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		_, err := repo.Create(ctx, randomOrder(gofakeit.Email()))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 25)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].ScheduledDate.Before(list[i-1].ScheduledDate), "orders out of order at %d", i)
	}
}

func TestListByDistributorEmail_FiltersCaseInsensitively(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	want := map[string]bool{}
	for i := 0; i < 10; i++ {
		email := "bob@x.com"
		if i%3 == 0 {
			email = gofakeit.Email()
		}
		saved, err := repo.Create(ctx, randomOrder(email))
		require.NoError(t, err)
		if email == "bob@x.com" {
			want[saved.ID] = true
		}
	}

	list, err := repo.ListByDistributorEmail(ctx, "BOB@x.com")
	require.NoError(t, err)
	require.Len(t, list, len(want))
	for i, order := range list {
		assert.True(t, want[order.ID])
		if i > 0 {
			assert.False(t, order.ScheduledDate.Before(list[i-1].ScheduledDate))
		}
	}
}

func TestUpdateStatus_BumpsUpdatedAt(t *testing.T) {
	current := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepository().WithClock(func() time.Time { return current })
	ctx := context.Background()

	saved, err := repo.Create(ctx, randomOrder("bob@x.com"))
	require.NoError(t, err)

	current = current.Add(time.Hour)
	updated, err := repo.UpdateStatus(ctx, saved.ID, domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, updated.Status)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.Equal(t, current, updated.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, domain.NewOrderID(), domain.StatusAccepted)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Create(ctx, randomOrder("bob@x.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}

func TestMalformedIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-a-valid-id")
	require.ErrorIs(t, err, ports.ErrInvalidID)
	_, err = repo.UpdateStatus(ctx, "not-a-valid-id", domain.StatusAccepted)
	require.ErrorIs(t, err, ports.ErrInvalidID)
	require.ErrorIs(t, repo.Delete(ctx, "not-a-valid-id"), ports.ErrInvalidID)
}

func TestReturnedOrdersAreCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Create(ctx, randomOrder("bob@x.com"))
	require.NoError(t, err)
	saved.OrderTypes[0] = "tampered"
	saved.Status = domain.StatusCompleted

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fetched.OrderTypes[0])
	assert.Equal(t, domain.StatusPending, fetched.Status)
}
