package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/memory"
	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

func newTestService(now time.Time) (*Service, *memory.SessionStore) {
	sessions := memory.NewSessionStore()
	svc := NewService(memory.NewRepository(), sessions,
		WithSessionTTL(2*time.Hour),
		WithClock(func() time.Time { return now }),
		WithTokenGenerator(func() (string, error) { return "token-1", nil }),
	)
	return svc, sessions
}

func register(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Green Co",
		Email:    "Ops@Green.lk",
		Password: "secret1",
		Address:  "Colombo",
	})
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	created, err := svc.Register(ctx, ports.RegisterInput{Name: "Green Co", Email: "Ops@Green.lk", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ops@green.lk", created.Email)
	assert.NotEmpty(t, created.ID)

	_, err = svc.Register(ctx, ports.RegisterInput{Name: "Other", Email: "ops@green.lk", Password: "secret1"})
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register(ctx, ports.RegisterInput{Name: "Short", Email: "s@x.com", Password: "123"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginLogoutAuthenticate(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	register(t, svc)
	ctx := context.Background()

	result, err := svc.Login(ctx, " OPS@green.lk", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	assert.Equal(t, now.Add(2*time.Hour), result.ExpiresAt)
	assert.Equal(t, "Green Co", result.Distributor.Name)

	session, err := svc.Authenticate(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "ops@green.lk", session.Email)

	require.NoError(t, svc.Logout(ctx, "token-1"))
	_, err = svc.Authenticate(ctx, "token-1")
	require.ErrorIs(t, err, ErrAuthentication)

	require.ErrorIs(t, svc.Logout(ctx, " "), ErrAuthentication)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(time.Now())
	register(t, svc)
	ctx := context.Background()

	_, err := svc.Login(ctx, "ops@green.lk", "wrong-password")
	require.ErrorIs(t, err, ErrAuthentication)
	_, err = svc.Login(ctx, "nobody@green.lk", "secret1")
	require.ErrorIs(t, err, ErrAuthentication)
	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	sessions := memory.NewSessionStore()
	svc := NewService(memory.NewRepository(), sessions, WithClock(func() time.Time { return now }))
	require.NoError(t, sessions.Save(context.Background(), ports.Session{Token: "old", ExpiresAt: now.Add(-time.Second)}))

	_, err := svc.Authenticate(context.Background(), "old")
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestRandomToken(t *testing.T) {
	a, err := randomToken()
	require.NoError(t, err)
	b, err := randomToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestGetAll(t *testing.T) {
	svc, _ := newTestService(time.Now())
	register(t, svc)
	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}
