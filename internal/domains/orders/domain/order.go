package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrEmptyCompany          = errors.New("company is required")
	ErrEmptyDistributorName  = errors.New("distributor name is required")
	ErrEmptyDistributorEmail = errors.New("distributor email is required")
	ErrEmptyOrderTypes       = errors.New("at least one order type is required")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrMissingScheduledDate  = errors.New("scheduled date is required")
)

// MinQuantity is the smallest collectable quantity in kilograms.
const MinQuantity = 1.0

// Order models a scheduled waste collection job. Distributor fields are a snapshot taken
// when the order is created and are never joined against the distributor directory.
type Order struct {
	ID               string
	Company          string
	DistributorName  string
	DistributorEmail string
	OrderTypes       []string
	Quantity         float64
	ScheduledDate    time.Time
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Attributes carries the caller-supplied fields of a new order.
type Attributes struct {
	Company          string
	DistributorName  string
	DistributorEmail string
	OrderTypes       []string
	Quantity         float64
	ScheduledDate    time.Time
	Status           Status
}

// NewOrder normalizes the attributes and validates the result. The id and timestamps are left
// for the store to assign.
func NewOrder(attrs Attributes) (*Order, error) {
	order := FromAttributes(attrs)
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// FromAttributes normalizes the attributes without validating them. Stores validate on write.
func FromAttributes(attrs Attributes) *Order {
	order := &Order{
		Company:          strings.TrimSpace(attrs.Company),
		DistributorName:  strings.TrimSpace(attrs.DistributorName),
		DistributorEmail: NormalizeEmail(attrs.DistributorEmail),
		OrderTypes:       NormalizeOrderTypes(attrs.OrderTypes),
		Quantity:         attrs.Quantity,
		ScheduledDate:    attrs.ScheduledDate,
		Status:           attrs.Status,
	}
	if order.Status == "" {
		order.Status = StatusPending
	}
	return order
}

// Validate enforces the invariants every persisted order must satisfy.
func (o *Order) Validate() error {
	var errs []error
	if strings.TrimSpace(o.Company) == "" {
		errs = append(errs, ErrEmptyCompany)
	}
	if strings.TrimSpace(o.DistributorName) == "" {
		errs = append(errs, ErrEmptyDistributorName)
	}
	if strings.TrimSpace(o.DistributorEmail) == "" {
		errs = append(errs, ErrEmptyDistributorEmail)
	}
	if len(o.OrderTypes) == 0 {
		errs = append(errs, ErrEmptyOrderTypes)
	}
	if o.Quantity < MinQuantity {
		errs = append(errs, ErrInvalidQuantity)
	}
	if o.ScheduledDate.IsZero() {
		errs = append(errs, ErrMissingScheduledDate)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrInvalidStatus)
	}
	return errors.Join(errs...)
}

// UpdateStatus overwrites the status. Any whitelisted status may follow any other.
func (o *Order) UpdateStatus(status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// Clone returns a deep copy so stores never share slices with callers.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.OrderTypes = append([]string(nil), o.OrderTypes...)
	return &clone
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeOrderTypes trims every label and drops empty ones, preserving order.
func NormalizeOrderTypes(types []string) []string {
	return lo.Compact(lo.Map(types, func(t string, _ int) string {
		return strings.TrimSpace(t)
	}))
}

// NewOrderID generates an opaque order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// ValidOrderID reports whether id has the identifier shape the stores accept.
func ValidOrderID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
