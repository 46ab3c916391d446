package db

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorNil(t *testing.T) {
	require.NoError(t, HandleError(nil))
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)
	require.True(t, IsNotFoundError(err))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "media_offers_pkey"})

	require.True(t, IsUniqueViolationError(err))

	var uniqueViolation *UniqueViolationError

	require.ErrorAs(t, err, &uniqueViolation)
	require.Equal(t, "media_offers_pkey", uniqueViolation.Constraint)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "media_offers_media_id_fkey"})
	require.True(t, IsForeignKeyViolationError(err))
}

func TestHandleErrorOtherPgError(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "42601"})

	require.False(t, IsNotFoundError(err))
	require.False(t, IsUniqueViolationError(err))
	require.False(t, IsForeignKeyViolationError(err))
}

func TestHandleErrorTransport(t *testing.T) {
	err := HandleError(&net.OpError{Op: "dial", Err: errors.New("connection refused")})
	require.True(t, IsTransportError(err))
}

func TestHandleErrorDeadlineExceeded(t *testing.T) {
	err := HandleError(context.DeadlineExceeded)
	require.True(t, IsTransportError(err))
}

func TestHandleErrorUnclassified(t *testing.T) {
	sentinel := errors.New("boom")
	require.Equal(t, sentinel, HandleError(sentinel))
}
