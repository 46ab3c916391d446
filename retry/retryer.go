package retry

import (
	"context"
	"time"
)

// RetryableFunc is a function which may be retried by a 'Retryer', receiving the current attempt's 'Context'.
type RetryableFunc func(ctx *Context) (any, error)

// Retryer executes a 'RetryableFunc', retrying on failure using a configurable backoff algorithm.
type Retryer struct {
	options RetryerOptions
}

// NewRetryer creates a 'Retryer' using the given options, filling in any unset fields with sane defaults.
func NewRetryer(options RetryerOptions) Retryer {
	options.defaults()
	return Retryer{options: options}
}

// Do runs the given function, retrying (with backoff) until it succeeds or the configured retries are exhausted.
func (r Retryer) Do(fn RetryableFunc) (any, error) {
	return r.DoWithContext(context.Background(), fn)
}

// DoWithContext behaves like 'Do', aborting early if the given context is cancelled whilst waiting to retry.
func (r Retryer) DoWithContext(ctx context.Context, fn RetryableFunc) (any, error) {
	rctx := NewContext(ctx)

	for {
		if ctx.Err() != nil {
			return nil, &RetriesAbortedError{attempts: rctx.attempt - 1, err: ctx.Err()}
		}

		payload, err := fn(rctx)

		shouldRetry := err != nil
		if r.options.ShouldRetry != nil {
			shouldRetry = r.options.ShouldRetry(rctx, payload, err)
		}

		if !shouldRetry {
			return payload, err
		}

		if rctx.attempt >= r.options.MaxRetries {
			return nil, &RetriesExhaustedError{retries: r.options.MaxRetries, err: err}
		}

		if r.options.Cleanup != nil {
			r.options.Cleanup(payload)
		}

		if r.options.Log != nil {
			r.options.Log(rctx, payload, err)
		}

		if sleepErr := r.sleep(ctx, rctx.attempt); sleepErr != nil {
			return nil, &RetriesAbortedError{attempts: rctx.attempt, err: sleepErr}
		}

		rctx.attempt++
	}
}

// sleep waits for the backoff duration of the given attempt, returning early with the context's error if it's
// cancelled/times out before the duration elapses.
func (r Retryer) sleep(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.duration(attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// duration returns the backoff duration for the given attempt, clamped to the configured 'MaxDelay'.
func (r Retryer) duration(attempt int) time.Duration {
	var d time.Duration

	switch r.options.Algoritmn {
	case AlgoritmnExponential:
		maxMultiplier := uint64(r.options.MaxDelay / r.options.MinDelay)
		multiplier := uint64(1) << uint(attempt)

		if multiplier > maxMultiplier {
			return r.options.MaxDelay
		}

		d = r.options.MinDelay * time.Duration(multiplier)
	case AlgoritmnLinear:
		d = r.options.MinDelay * time.Duration(attempt)
	case AlgoritmnFibonacci:
		fallthrough
	default:
		d = r.options.MinDelay * time.Duration(fibN(attempt))
	}

	if d <= 0 || d > r.options.MaxDelay {
		return r.options.MaxDelay
	}

	return d
}
