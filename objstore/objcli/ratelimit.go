package objcli

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/peoplesmarkets/media/maths"
)

// rateLimitedReadSeeker wraps an 'io.ReadSeeker' so reads draw tokens from 'limiter', throttling outbound
// object-store traffic (adapted from the teacher's 'ratelimit.RateLimitedReader').
type rateLimitedReadSeeker struct {
	ctx     context.Context
	r       io.ReadSeeker
	limiter *rate.Limiter
}

func newRateLimitedReadSeeker(ctx context.Context, r io.ReadSeeker, limiter *rate.Limiter) *rateLimitedReadSeeker {
	return &rateLimitedReadSeeker{ctx: ctx, r: r, limiter: limiter}
}

func (r *rateLimitedReadSeeker) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n <= 0 {
		return n, err
	}

	if waitErr := waitChunked(r.ctx, r.limiter, n); waitErr != nil {
		return n, waitErr
	}

	return n, err
}

func (r *rateLimitedReadSeeker) Seek(offset int64, whence int) (int64, error) {
	return r.r.Seek(offset, whence)
}

// waitChunked waits for 'n' tokens in chunks of the limiter's burst size, since 'rate.Limiter' only allows draining
// at most its burst size at once.
func waitChunked(ctx context.Context, limiter *rate.Limiter, n int) error {
	maxChunkSize := limiter.Burst()

	for n > 0 {
		waitFor := maths.Min(n, maxChunkSize)
		if err := limiter.WaitN(ctx, waitFor); err != nil {
			return fmt.Errorf("could not wait for limiter: %w", err)
		}

		n -= waitFor
	}

	return nil
}
