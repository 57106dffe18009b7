package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

func getRedisClient(t *testing.T) *goredis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}

func TestSessionStore_NotConfigured(t *testing.T) {
	var store *SessionStore
	require.Error(t, store.Save(context.Background(), ports.Session{Token: "x"}))
}

func TestSessionStore_RoundTripWithTTL(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()
	store := NewSessionStore(client)
	client.Del(ctx, sessionKey("test-token"))

	session := ports.Session{
		Token:         "test-token",
		DistributorID: "d-1",
		Email:         "ops@green.lk",
		ExpiresAt:     time.Now().Add(time.Minute).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, session))

	ttl, err := client.TTL(ctx, sessionKey("test-token")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	got, err := store.Get(ctx, "test-token")
	require.NoError(t, err)
	assert.Equal(t, session.Email, got.Email)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "test-token"))
	_, err = store.Get(ctx, "test-token")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_SkipsAlreadyExpired(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()
	store := NewSessionStore(client)

	require.NoError(t, store.Save(ctx, ports.Session{Token: "expired-token", ExpiresAt: time.Now().Add(-time.Second)}))
	_, err := store.Get(ctx, "expired-token")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}
