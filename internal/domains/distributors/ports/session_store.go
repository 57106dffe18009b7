package ports

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session binds an opaque token to a distributor until ExpiresAt.
type Session struct {
	Token         string    `json:"token"`
	DistributorID string    `json:"distributorId"`
	Email         string    `json:"email"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore abstracts session/token persistence.
type SessionStore interface {
	Save(ctx context.Context, session Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionPurger is implemented by stores that need explicit housekeeping of expired sessions.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// NoopSessionStore is a safe default when callers do not need session persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(context.Context, Session) error { return nil }
func (noopSessionStore) Get(context.Context, string) (*Session, error) {
	return nil, ErrSessionNotFound
}
func (noopSessionStore) Delete(context.Context, string) error { return nil }
