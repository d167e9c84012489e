package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("validation failed")
	// ErrAuthorization indicates the actor may not perform the operation.
	ErrAuthorization = errors.New("not authorized")
	// ErrConfiguration indicates missing reference data (e.g. an empty rate
	// table for a program level + defense type pair). Retryable after the
	// reference data is fixed.
	ErrConfiguration = errors.New("configuration missing")
)

// ValidationError tags an error as a validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// AuthorizationError tags an error as an authorization failure.
func AuthorizationError(msg string) error {
	return errors.Join(ErrAuthorization, errors.New(strings.TrimSpace(msg)))
}

// ConfigurationError tags an error as a reference-data gap.
func ConfigurationError(msg string) error {
	return errors.Join(ErrConfiguration, errors.New(strings.TrimSpace(msg)))
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
