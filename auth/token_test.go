package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestExtractBearerToken(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := ExtractBearerToken(context.Background())
		require.Error(t, err)
	})

	t.Run("NoAuthorizationHeader", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})
		_, err := ExtractBearerToken(ctx)
		require.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		md := metadata.Pairs("authorization", "Token abc")
		ctx := metadata.NewIncomingContext(context.Background(), md)
		_, err := ExtractBearerToken(ctx)
		require.Error(t, err)
	})

	t.Run("Valid", func(t *testing.T) {
		md := metadata.Pairs("authorization", "Bearer abc.def.ghi")
		ctx := metadata.NewIncomingContext(context.Background(), md)
		token, err := ExtractBearerToken(ctx)
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", token)
	})
}
