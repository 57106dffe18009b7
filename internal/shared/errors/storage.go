package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes recognised by FromStorageError.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
)

// FromStorageError classifies raw storage failures that escaped the repositories. Malformed keys
// and required or check violations become 400, unique violations 409, anything else 500.
func FromStorageError(err error) (ProblemDetail, bool) {
	if err == nil {
		return ProblemDetail{}, false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict.WithDetail("resource already exists"), true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound.WithDetail("resource not found"), true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ProblemDetail{}, false
	}
	switch pgErr.Code {
	case pgInvalidTextRepresentation:
		return ErrValidation.WithDetail("invalid identifier format"), true
	case pgUniqueViolation:
		return ErrConflict.WithDetail("resource already exists"), true
	case pgNotNullViolation, pgCheckViolation:
		detail := "record failed validation"
		if pgErr.ConstraintName != "" {
			detail += ": " + pgErr.ConstraintName
		} else if pgErr.ColumnName != "" {
			detail += ": " + pgErr.ColumnName + " is required"
		}
		return ErrValidation.WithDetail(detail), true
	default:
		return ErrInternal.WithDetail("storage failure"), true
	}
}
