package ports

import (
	"context"
	"time"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token       string
	ExpiresAt   time.Time
	Distributor *domain.Distributor
}

// Service exposes the distributor directory use cases to adapters.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Distributor, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*Session, error)
	GetAll(ctx context.Context) ([]*domain.Distributor, error)
}
