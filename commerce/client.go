package commerce

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrUnavailable is returned once 'GetOffer' exhausts its retry budget against a failing commerce service.
var ErrUnavailable = errors.New("commerce: unavailable")

// Config is the dial target for the commerce-service RPC endpoint consulted for offer ownership/access-policy
// lookups (§4.6).
type Config struct {
	Address string
}

// Client is a lazily-dialed commerce-service client. The connection is established on first use rather than at
// construction, the same deferred-dial posture the teacher's object store clients take towards their underlying
// SDK clients.
type Client struct {
	cfg Config

	dialOnce sync.Once
	dialErr  error
	conn     *grpc.ClientConn
}

// NewClient returns a 'Client' for the given commerce-service address. No network I/O happens until the first RPC.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) connection() (*grpc.ClientConn, error) {
	c.dialOnce.Do(func() {
		c.conn, c.dialErr = grpc.Dial(
			c.cfg.Address,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
		)
	})

	return c.conn, c.dialErr
}

// Close releases the underlying connection, if one was ever established.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

type getOfferRequest struct {
	OfferID string `json:"offer_id"`
}

// GetOffer resolves 'offerID' against the commerce service, making up to three attempts in all (waiting 50ms, then
// 200ms, between them; the interval is capped at 800ms) before the error is surfaced to the caller as unavailable.
func (c *Client) GetOffer(ctx context.Context, offerID string) (*Offer, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, fmt.Errorf("commerce: dial: %w", err)
	}

	policy := backoff.WithMaxRetries(
		&backoff.ExponentialBackOff{
			InitialInterval:     50 * time.Millisecond,
			RandomizationFactor: 0,
			Multiplier:          4,
			MaxInterval:         800 * time.Millisecond,
			MaxElapsedTime:      0,
			Clock:               backoff.SystemClock,
		},
		2,
	)

	var offer Offer

	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		return conn.Invoke(
			callCtx, "/peoplesmarkets.commerce.v1.OfferService/GetOffer",
			&getOfferRequest{OfferID: offerID}, &offer,
		)
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("%w: get offer %q: %w", ErrUnavailable, offerID, err)
	}

	return &offer, nil
}
