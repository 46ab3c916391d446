// Package subscription projects commerce-service subscription events into the local 'media_subscriptions' table
// and serves as the read surface the authorization layer consults for the subscription-gated access grant (§4.3).
package subscription

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/db/mediastore"
)

// Record is the payload of a 'put_media_subscription' call (§4.7). It is write-only to external callers: nothing
// in this package exposes a list/get RPC surface beyond 'HasLiveSubscription'.
type Record struct {
	MediaSubscriptionID string
	BuyerUserID         string
	OfferID             string
	CurrentPeriodStart  time.Time
	CurrentPeriodEnd    time.Time
	SubscriptionStatus  string
	PayedAt             time.Time
	PayedUntil          time.Time
}

// Projector upserts subscription records by 'MediaSubscriptionID' and answers liveness queries for 'auth'.
type Projector struct {
	pool *pgxpool.Pool
}

// NewProjector returns a 'Projector' backed by 'pool'.
func NewProjector(pool *pgxpool.Pool) *Projector {
	return &Projector{pool: pool}
}

// PutMediaSubscription upserts 'record' by its 'MediaSubscriptionID'. There is no authorization check here beyond
// whatever service-to-service token the caller already presented to reach this RPC (§4.7): the trust boundary is
// the infrastructure path, not this package.
func (p *Projector) PutMediaSubscription(ctx context.Context, record Record) error {
	return mediastore.UpsertSubscription(ctx, p.pool, mediastore.Subscription{
		MediaSubscriptionID: record.MediaSubscriptionID,
		BuyerUserID:         record.BuyerUserID,
		OfferID:             record.OfferID,
		CurrentPeriodStart:  record.CurrentPeriodStart,
		CurrentPeriodEnd:    record.CurrentPeriodEnd,
		SubscriptionStatus:  record.SubscriptionStatus,
		PayedAt:             record.PayedAt,
		PayedUntil:          record.PayedUntil,
	})
}

// HasLiveSubscription reports whether 'buyerUserID' holds a subscription to 'offerID' whose 'payed_until' has not
// yet passed. It is the predicate 'auth' evaluates for the subscription-gated branch of the §4.3 access grant.
func (p *Projector) HasLiveSubscription(ctx context.Context, buyerUserID, offerID string, now time.Time) (bool, error) {
	return mediastore.HasLiveSubscription(ctx, p.pool, buyerUserID, offerID, now)
}
