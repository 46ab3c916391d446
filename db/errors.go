// Package db provides Postgres connection pooling and a typed error taxonomy for the relational store, following
// the same "typed sentinel/struct, not one generic error" style as 'objstore/objerr'.
package db

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes this package classifies; see
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// NotFoundError is returned when a query expected to return a row returned none.
type NotFoundError struct {
	// Type is a human readable description of what wasn't found e.g. "media" or "media_subscription".
	Type string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("failed to find %s", e.Type)
}

// IsNotFoundError returns a boolean indicating whether the given error is/wraps a 'NotFoundError'.
func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// UniqueViolationError is returned when an insert/update would violate a unique constraint.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("violates unique constraint %q", e.Constraint)
}

// IsUniqueViolationError returns a boolean indicating whether the given error is/wraps a 'UniqueViolationError'.
func IsUniqueViolationError(err error) bool {
	var uniqueViolationError *UniqueViolationError
	return errors.As(err, &uniqueViolationError)
}

// ForeignKeyViolationError is returned when an insert/update/delete would violate a foreign key constraint.
type ForeignKeyViolationError struct {
	Constraint string
}

func (e *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("violates foreign key constraint %q", e.Constraint)
}

// IsForeignKeyViolationError returns a boolean indicating whether the given error is/wraps a
// 'ForeignKeyViolationError'.
func IsForeignKeyViolationError(err error) bool {
	var foreignKeyViolationError *ForeignKeyViolationError
	return errors.As(err, &foreignKeyViolationError)
}

// TransportError wraps a network/connection-level failure talking to the relational store, the kind of error that's
// generally worth retrying.
type TransportError struct {
	err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error communicating with database: %v", e.err)
}

func (e *TransportError) Unwrap() error {
	return e.err
}

// IsTransportError returns a boolean indicating whether the given error is/wraps a 'TransportError'.
func IsTransportError(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError)
}

// HandleError classifies a raw 'pgx'/'pgconn' error into one of this package's typed errors, falling back to
// returning the given error unchanged when no classification applies.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Type: "row"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &UniqueViolationError{Constraint: pgErr.ConstraintName}
		case codeForeignKeyViolation:
			return &ForeignKeyViolationError{Constraint: pgErr.ConstraintName}
		}

		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{err: err}
	}

	return err
}
