package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

const keyPrefix = "session:"

// SessionStore keeps distributor sessions in Redis. Expiry is delegated to key TTLs, so no purge
// job is needed.
type SessionStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

func sessionKey(token string) string {
	return keyPrefix + token
}

func (s *SessionStore) Save(ctx context.Context, session ports.Session) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	token := strings.TrimSpace(session.Token)
	if token == "" {
		return errors.New("token is required")
	}
	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(token), payload, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (*ports.Session, error) {
	if err := s.ensureClient(); err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, sessionKey(strings.TrimSpace(token))).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session ports.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func (s *SessionStore) ensureClient() error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
