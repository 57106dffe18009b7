package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
	ErrMissingHash   = errors.New("password hash is required")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Distributor is a registered collection customer. The password is only ever held as a bcrypt hash.
type Distributor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDistributor validates the registration fields and hashes the password.
func NewDistributor(name, email, password, address string) (*Distributor, error) {
	d := &Distributor{
		Name:    strings.TrimSpace(name),
		Email:   NormalizeEmail(email),
		Address: strings.TrimSpace(address),
	}
	var errs []error
	if d.Name == "" {
		errs = append(errs, ErrEmptyName)
	}
	if !strings.Contains(d.Email, "@") {
		errs = append(errs, ErrInvalidEmail)
	}
	if err := checkPassword(password); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	d.PasswordHash = string(hash)
	return d, nil
}

func checkPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (d *Distributor) CheckPassword(password string) bool {
	if d == nil || d.PasswordHash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) == nil
}

// Validate re-applies the invariants for persistence.
func (d *Distributor) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ErrEmptyName)
	}
	if !strings.Contains(d.Email, "@") {
		errs = append(errs, ErrInvalidEmail)
	}
	if d.PasswordHash == "" {
		errs = append(errs, ErrMissingHash)
	}
	return errors.Join(errs...)
}

func (d *Distributor) Clone() *Distributor {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

// NormalizeEmail trims and lowercases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewDistributorID generates an opaque distributor identifier.
func NewDistributorID() string {
	return uuid.NewString()
}
