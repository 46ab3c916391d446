package auth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc/metadata"
)

// ExtractBearerToken reads the 'authorization' metadata entry from an incoming gRPC context and returns the raw
// token from a "Bearer <token>" scheme.
func ExtractBearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", fmt.Errorf("auth: no metadata in context")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return "", fmt.Errorf("auth: no authorization header")
	}

	parts := strings.SplitN(values[0], " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("auth: malformed authorization header")
	}

	return parts[1], nil
}

// Authenticate extracts and verifies the bearer token on 'ctx', returning the caller's subject.
func (v *Verifier) Authenticate(ctx context.Context) (string, error) {
	token, err := ExtractBearerToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return v.Verify(ctx, token)
}
