package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Adapters never automigrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&distributorRecord{},
		&sessionRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
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

// Distributor schema mirrors the distributors Postgres adapter.
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

// Session schema mirrors the distributor session store.
type sessionRecord struct {
	Token         string     `gorm:"primaryKey;column:token;size:128"`
	DistributorID string     `gorm:"column:distributor_id;index"`
	Email         string     `gorm:"column:email;index"`
	ExpiresAt     *time.Time `gorm:"column:expires_at;index"`
	CreatedAt     time.Time  `gorm:"column:created_at;index"`
}

func (sessionRecord) TableName() string { return "distributor_sessions" }
