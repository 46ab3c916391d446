// Package grpcapi binds the plain mediapb request/response DTOs to mediasvc/subscription over a grpc.Server,
// translating domain errors into transport status codes per the §7 error taxonomy.
package grpcapi

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/commerce"
	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/mediasvc"
	"github.com/peoplesmarkets/media/pagination"
)

// toStatus classifies a domain error returned by mediasvc/auth/db/pagination into the §7 taxonomy, following the
// same errors.Is/As-based classification style as 'db.HandleError'. Errors that fall through to 'Internal' are
// logged server-side and never forwarded to the caller verbatim (§7: internal failures must not leak detail).
func toStatus(log log.WrappedLogger, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, mediasvc.ErrInvalidArgument), errors.Is(err, pagination.ErrInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, auth.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case db.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, mediasvc.ErrAlreadyExists), db.IsUniqueViolationError(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, mediasvc.ErrFailedPrecondition), db.IsForeignKeyViolationError(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case db.IsTransportError(err), errors.Is(err, commerce.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		log.Errorf("internal error: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}
