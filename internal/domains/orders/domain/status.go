package domain

import "errors"

// Status enumerates the collection order lifecycle.
type Status string

// remember to add new statuses to validStatuses
const (
	StatusPending      Status = "pending"
	StatusAccepted     Status = "accepted"
	StatusCompleted    Status = "completed"
	StatusNotCompleted Status = "not completed"
)

var ErrInvalidStatus = errors.New("order status must be one of: pending, accepted, completed, not completed")

var validStatuses = map[Status]struct{}{
	StatusPending:      {},
	StatusAccepted:     {},
	StatusCompleted:    {},
	StatusNotCompleted: {},
}

// ParseStatus converts raw input into a known status. Matching is exact, so padded or
// differently cased values are rejected.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Valid reports whether the status is part of the whitelist.
func (s Status) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Statuses lists the allowed statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusCompleted, StatusNotCompleted}
}
