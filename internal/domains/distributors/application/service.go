package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

var errInvalidCredentials = errors.New("invalid email or password")

// Service implements the distributor directory use cases.
type Service struct {
	repo       ports.Repository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	now        func() time.Time
	newToken   func() (string, error)
}

type Option func(*Service)

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTokenGenerator replaces the random session token source.
func WithTokenGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		if gen != nil {
			s.newToken = gen
		}
	}
}

func NewService(repo ports.Repository, sessions ports.SessionStore, opts ...Option) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	s := &Service{
		repo:       repo,
		sessions:   sessions,
		sessionTTL: DefaultSessionTTL,
		now:        time.Now,
		newToken:   randomToken,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*domain.Distributor, error) {
	distributor, err := domain.NewDistributor(input.Name, input.Email, input.Password, input.Address)
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, distributor)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// Login checks the credentials and opens a session. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmtAuth(errInvalidCredentials)
	}
	distributor, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmtAuth(errInvalidCredentials)
		}
		return nil, err
	}
	if !distributor.CheckPassword(password) {
		return nil, fmtAuth(errInvalidCredentials)
	}
	token, err := s.newToken()
	if err != nil {
		return nil, err
	}
	session := ports.Session{
		Token:         token,
		DistributorID: distributor.ID,
		Email:         distributor.Email,
		ExpiresAt:     s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &ports.LoginResult{Token: token, ExpiresAt: session.ExpiresAt, Distributor: distributor}, nil
}

// Logout ends the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmtAuth(ports.ErrSessionNotFound)
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token into its live session.
func (s *Service) Authenticate(ctx context.Context, token string) (*ports.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmtAuth(ports.ErrSessionNotFound)
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, mapError(err)
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, fmtAuth(ports.ErrSessionNotFound)
	}
	return session, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Distributor, error) {
	return s.repo.List(ctx)
}

func fmtAuth(err error) error {
	return fmt.Errorf("%w: %w", ErrAuthentication, err)
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.Service = (*Service)(nil)
