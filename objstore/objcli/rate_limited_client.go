package objcli

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"github.com/peoplesmarkets/media/objstore/objval"
)

// RateLimitedClient wraps a 'Client', throttling the data-transfer methods ('GetObject' isn't throttled on read
// since its body is streamed back to the caller rather than consumed here; 'PutObject'/'UploadPart' bodies are)
// against a shared 'rate.Limiter', adapted from the teacher's 'objcli.RateLimitedClient'.
type RateLimitedClient struct {
	c  Client
	rl *rate.Limiter
}

// NewRateLimitedClient returns a 'RateLimitedClient' wrapping 'c'.
func NewRateLimitedClient(c Client, rl *rate.Limiter) *RateLimitedClient {
	return &RateLimitedClient{c: c, rl: rl}
}

func (r *RateLimitedClient) Provider() objval.Provider {
	return r.c.Provider()
}

func (r *RateLimitedClient) GetObject(ctx context.Context, bucket, key string) (*objval.Object, error) {
	return r.c.GetObject(ctx, bucket, key)
}

func (r *RateLimitedClient) GetObjectAttrs(ctx context.Context, bucket, key string) (*objval.ObjectAttrs, error) {
	return r.c.GetObjectAttrs(ctx, bucket, key)
}

func (r *RateLimitedClient) PutObject(ctx context.Context, bucket, key, contentType string, body io.ReadSeeker) error {
	return r.c.PutObject(ctx, bucket, key, contentType, newRateLimitedReadSeeker(ctx, body, r.rl))
}

func (r *RateLimitedClient) DeleteObjects(ctx context.Context, bucket string, keys ...string) error {
	return r.c.DeleteObjects(ctx, bucket, keys...)
}

func (r *RateLimitedClient) DeleteDirectory(ctx context.Context, bucket, prefix string) error {
	return r.c.DeleteDirectory(ctx, bucket, prefix)
}

func (r *RateLimitedClient) CreateMultipartUpload(ctx context.Context, bucket, key, contentType string) (string, error) {
	return r.c.CreateMultipartUpload(ctx, bucket, key, contentType)
}

func (r *RateLimitedClient) UploadPart(
	ctx context.Context, bucket, id, key string, number int, body io.ReadSeeker,
) (objval.Part, error) {
	return r.c.UploadPart(ctx, bucket, id, key, number, newRateLimitedReadSeeker(ctx, body, r.rl))
}

func (r *RateLimitedClient) CompleteMultipartUpload(
	ctx context.Context, bucket, id, key string, parts ...objval.Part,
) error {
	return r.c.CompleteMultipartUpload(ctx, bucket, id, key, parts...)
}

func (r *RateLimitedClient) AbortMultipartUpload(ctx context.Context, bucket, id, key string) error {
	return r.c.AbortMultipartUpload(ctx, bucket, id, key)
}

var _ Client = (*RateLimitedClient)(nil)
