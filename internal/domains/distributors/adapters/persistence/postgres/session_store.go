package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// SessionStore persists distributor sessions in PostgreSQL.
type SessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

type sessionRecord struct {
	Token         string     `gorm:"primaryKey;column:token;size:128"`
	DistributorID string     `gorm:"column:distributor_id;index"`
	Email         string     `gorm:"column:email;index"`
	ExpiresAt     *time.Time `gorm:"column:expires_at;index"`
	CreatedAt     time.Time  `gorm:"column:created_at;index"`
}

func (sessionRecord) TableName() string { return "distributor_sessions" }

// Save upserts a session keyed by token.
func (s *SessionStore) Save(ctx context.Context, session ports.Session) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token := strings.TrimSpace(session.Token)
	if token == "" || session.Email == "" {
		return errors.New("token and email are required")
	}
	rec := sessionRecord{Token: token, DistributorID: session.DistributorID, Email: session.Email}
	if !session.ExpiresAt.IsZero() {
		expiry := session.ExpiresAt
		rec.ExpiresAt = &expiry
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"distributor_id", "email", "expires_at"}),
		}).
		Create(&rec).Error
}

// Get returns a live session. Expired rows are treated as missing until the purge job runs.
func (s *SessionStore) Get(ctx context.Context, token string) (*ports.Session, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).
		Where("token = ?", strings.TrimSpace(token)).
		Where("expires_at IS NULL OR expires_at > ?", s.now()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	session := &ports.Session{Token: rec.Token, DistributorID: rec.DistributorID, Email: rec.Email}
	if rec.ExpiresAt != nil {
		session.ExpiresAt = *rec.ExpiresAt
	}
	return session, nil
}

// Delete removes a session by token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes all expired sessions. Use for housekeeping or cron.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at <= ?", s.now()).Delete(&sessionRecord{})
	return result.RowsAffected, result.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

var (
	_ ports.SessionStore  = (*SessionStore)(nil)
	_ ports.SessionPurger = (*SessionStore)(nil)
)
