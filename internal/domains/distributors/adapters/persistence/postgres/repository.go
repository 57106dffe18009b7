package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
	"github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists distributors in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type distributorRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Address      string    `gorm:"column:address"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (distributorRecord) TableName() string { return "distributors" }

// Create inserts a distributor. The unique email index turns duplicates into ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if distributor == nil {
		return nil, errors.New("distributor is nil")
	}
	clone := distributor.Clone()
	clone.Email = domain.NormalizeEmail(clone.Email)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := distributorRecord{
		ID:           uuid.New(),
		Name:         clone.Name,
		Email:        clone.Email,
		PasswordHash: clone.PasswordHash,
		Address:      clone.Address,
	}
	if clone.ID != "" {
		parsed, err := uuid.Parse(clone.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid distributor id: %w", err)
		}
		record.ID = parsed
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Distributor, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record distributorRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", domain.NormalizeEmail(email)).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toDomain(), nil
}

// List returns distributors ordered by name then email.
func (r *Repository) List(ctx context.Context) ([]*domain.Distributor, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []distributorRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Order("email ASC").Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	list := make([]*domain.Distributor, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres distributor repository not configured")
	}
	return nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ports.ErrDuplicateEmail, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %w", ports.ErrDuplicateEmail, err)
	}
	return err
}

func (r distributorRecord) toDomain() *domain.Distributor {
	return &domain.Distributor{
		ID:           r.ID.String(),
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Address:      r.Address,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
