package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/commerce"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/mediasvc"
	"github.com/peoplesmarkets/media/pagination"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "Nil", err: nil, want: codes.OK},
		{name: "DeadlineExceeded", err: fmt.Errorf("wrap: %w", context.DeadlineExceeded), want: codes.DeadlineExceeded},
		{name: "InvalidArgument", err: fmt.Errorf("wrap: %w", mediasvc.ErrInvalidArgument), want: codes.InvalidArgument},
		{name: "PaginationInvalid", err: fmt.Errorf("wrap: %w", pagination.ErrInvalid), want: codes.InvalidArgument},
		{name: "Unauthenticated", err: fmt.Errorf("wrap: %w", auth.ErrInvalidToken), want: codes.Unauthenticated},
		{name: "PermissionDenied", err: fmt.Errorf("wrap: %w", auth.ErrPermissionDenied), want: codes.PermissionDenied},
		{name: "AlreadyExists", err: fmt.Errorf("wrap: %w", mediasvc.ErrAlreadyExists), want: codes.AlreadyExists},
		{name: "FailedPrecondition", err: fmt.Errorf("wrap: %w", mediasvc.ErrFailedPrecondition), want: codes.FailedPrecondition},
		{name: "Unavailable", err: fmt.Errorf("wrap: %w", commerce.ErrUnavailable), want: codes.Unavailable},
		{name: "Internal", err: errors.New("boom"), want: codes.Internal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := toStatus(log.NewWrappedLogger(log.NopLogger{}), test.err)

			if test.err == nil {
				require.NoError(t, err)
				return
			}

			st, ok := status.FromError(err)
			require.True(t, ok)
			require.Equal(t, test.want, st.Code())
		})
	}
}

func TestToStatusInternalDoesNotLeakErrorText(t *testing.T) {
	err := toStatus(log.NewWrappedLogger(log.NopLogger{}), errors.New("boom: connection refused by internal-db-01"))

	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, st.Code())
	require.Equal(t, "internal error", st.Message())
}
