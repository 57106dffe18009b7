package application

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	"github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrScheduledInPast rejects pickups dated before the start of the current day.
	ErrScheduledInPast = errors.New("scheduled date cannot be in the past")
	// ErrMissingFields rejects a creation request with required fields left empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrMissingDistributorEmail rejects a distributor lookup without an email.
	ErrMissingDistributorEmail = errors.New("distributor email is required")
)

// ValidationError lists the offending fields of a rejected request. Reason is one of
// ErrMissingFields, ErrMissingDistributorEmail or ports.ErrInvalidID.
type ValidationError struct {
	Reason error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Reason}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) {
		return err
	}
	if errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, ports.ErrInvalidID) ||
		errors.Is(err, ports.ErrConstraintViolation) ||
		errors.Is(err, ErrScheduledInPast) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

const (
	inputErrorKindScheduledInPast = "scheduled_in_past"
	inputErrorKindOther           = "invalid"
)

var validationReasons = map[string]error{
	"missing_fields":            ErrMissingFields,
	"missing_distributor_email": ErrMissingDistributorEmail,
	"invalid_id":                ports.ErrInvalidID,
}

// InputErrorDetail is the serializable form of a rejected order request. Workflow activities
// attach it to their failure so the caller can rebuild the same typed error with Err.
type InputErrorDetail struct {
	Kind    string            `json:"kind"`
	Fields  map[string]string `json:"fields,omitempty"`
	Message string            `json:"message"`
}

// DescribeInputError captures err, which should wrap ErrInvalidInput, as an InputErrorDetail.
func DescribeInputError(err error) InputErrorDetail {
	detail := InputErrorDetail{Kind: inputErrorKindOther}
	if err == nil {
		return detail
	}
	detail.Message = err.Error()
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		for kind, reason := range validationReasons {
			if validation.Reason == reason {
				detail.Kind = kind
			}
		}
		detail.Fields = maps.Clone(validation.Fields)
	case errors.Is(err, ErrScheduledInPast):
		detail.Kind = inputErrorKindScheduledInPast
	}
	return detail
}

// Err rebuilds the error DescribeInputError captured. Unknown kinds still wrap ErrInvalidInput.
func (d InputErrorDetail) Err() error {
	if d.Kind == inputErrorKindScheduledInPast {
		return mapError(ErrScheduledInPast)
	}
	if reason, ok := validationReasons[d.Kind]; ok {
		return &ValidationError{Reason: reason, Fields: maps.Clone(d.Fields)}
	}
	message := strings.TrimPrefix(d.Message, ErrInvalidInput.Error()+": ")
	if message == "" || message == ErrInvalidInput.Error() {
		return ErrInvalidInput
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}
