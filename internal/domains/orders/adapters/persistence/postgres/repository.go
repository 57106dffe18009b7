package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to the orders table. internal/platform/migrations mirrors it.
type orderRecord struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	Company          string         `gorm:"column:company;not null;check:chk_orders_company,company <> ''"`
	DistributorName  string         `gorm:"column:distributor_name;not null"`
	DistributorEmail string         `gorm:"column:distributor_email;not null;index:idx_orders_distributor_scheduled,priority:1"`
	OrderTypes       pq.StringArray `gorm:"column:order_types;type:text[];not null;check:chk_orders_types,cardinality(order_types) >= 1"`
	Quantity         float64        `gorm:"column:quantity;not null;check:chk_orders_quantity,quantity >= 1"`
	ScheduledDate    time.Time      `gorm:"column:scheduled_date;not null;index;index:idx_orders_distributor_scheduled,priority:2"`
	Status           string         `gorm:"column:status;type:varchar(32);not null;default:pending;check:chk_orders_status,status IN ('pending','accepted','completed','not completed')"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Create inserts a new order. Invariants are enforced by the table constraints and re-checked here
// so the in-memory and relational stores reject the same records.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	clone.DistributorEmail = domain.NormalizeEmail(clone.DistributorEmail)
	if clone.Status == "" {
		clone.Status = domain.StatusPending
	}
	if err := clone.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
	}
	record, err := toRecord(clone)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toDomain(), nil
}

// List returns all orders by scheduled date.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.ordered(ctx).Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainList(records), nil
}

// ListByDistributorEmail returns one distributor's orders by scheduled date.
func (r *Repository) ListByDistributorEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.ordered(ctx).
		Where("distributor_email = ?", domain.NormalizeEmail(email)).
		Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainList(records), nil
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toDomain(), nil
}

// UpdateStatus overwrites the status and returns the updated row in one statement.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	result := r.db.WithContext(ctx).
		Model(&records).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 || len(records) == 0 {
		return nil, ports.ErrNotFound
	}
	return records[0].toDomain(), nil
}

// Delete removes an order by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderRecord{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("scheduled_date ASC").Order("created_at ASC")
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

// translateError maps driver failures onto the store's error contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02":
			return fmt.Errorf("%w: %w", ports.ErrInvalidID, err)
		case "23502", "23505", "23514":
			return fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
		}
	}
	return err
}

func toRecord(order *domain.Order) (orderRecord, error) {
	id := uuid.New()
	if order.ID != "" {
		parsed, err := uuid.Parse(order.ID)
		if err != nil {
			return orderRecord{}, fmt.Errorf("%w: %w", ports.ErrInvalidID, err)
		}
		id = parsed
	}
	return orderRecord{
		ID:               id,
		Company:          order.Company,
		DistributorName:  order.DistributorName,
		DistributorEmail: order.DistributorEmail,
		OrderTypes:       pq.StringArray(append([]string(nil), order.OrderTypes...)),
		Quantity:         order.Quantity,
		ScheduledDate:    order.ScheduledDate,
		Status:           string(order.Status),
	}, nil
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:               r.ID.String(),
		Company:          r.Company,
		DistributorName:  r.DistributorName,
		DistributorEmail: r.DistributorEmail,
		OrderTypes:       append([]string(nil), r.OrderTypes...),
		Quantity:         r.Quantity,
		ScheduledDate:    r.ScheduledDate,
		Status:           domain.Status(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toDomainList(records []orderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders
}
