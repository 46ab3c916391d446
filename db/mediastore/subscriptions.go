package mediastore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/db"
)

// Subscription is one row of the 'media_subscriptions' projection, written only by 'UpsertSubscription' and read
// only by the authorization layer.
type Subscription struct {
	MediaSubscriptionID string
	BuyerUserID         string
	OfferID             string
	CurrentPeriodStart  time.Time
	CurrentPeriodEnd    time.Time
	SubscriptionStatus  string
	PayedAt             time.Time
	PayedUntil          time.Time
}

// UpsertSubscription inserts/replaces the subscription row identified by 'MediaSubscriptionID'.
func UpsertSubscription(ctx context.Context, pool *pgxpool.Pool, sub Subscription) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO media_subscriptions (
			media_subscription_id, buyer_user_id, offer_id, current_period_start, current_period_end,
			subscription_status, payed_at, payed_until
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (media_subscription_id) DO UPDATE SET
			buyer_user_id        = EXCLUDED.buyer_user_id,
			offer_id              = EXCLUDED.offer_id,
			current_period_start  = EXCLUDED.current_period_start,
			current_period_end    = EXCLUDED.current_period_end,
			subscription_status   = EXCLUDED.subscription_status,
			payed_at              = EXCLUDED.payed_at,
			payed_until           = EXCLUDED.payed_until
	`,
		sub.MediaSubscriptionID, sub.BuyerUserID, sub.OfferID, sub.CurrentPeriodStart, sub.CurrentPeriodEnd,
		sub.SubscriptionStatus, sub.PayedAt, sub.PayedUntil,
	)

	return db.HandleError(err)
}

// HasLiveSubscription reports whether 'buyerUserID' holds a subscription to 'offerID' whose 'payed_until' has not
// yet passed 'now', the predicate behind the §4.3 subscription-gated access grant.
func HasLiveSubscription(ctx context.Context, pool *pgxpool.Pool, buyerUserID, offerID string, now time.Time) (bool, error) {
	rows, err := pool.Query(ctx, `
		SELECT 1 FROM media_subscriptions
		WHERE buyer_user_id = $1 AND offer_id = $2 AND payed_until >= $3
		LIMIT 1
	`, buyerUserID, offerID, now)
	if err != nil {
		return false, db.HandleError(err)
	}
	defer rows.Close()

	_, err = pgx.CollectExactlyOneRow(rows, pgx.RowTo[int])

	switch {
	case err == nil:
		return true, nil
	case db.IsNotFoundError(db.HandleError(err)):
		return false, nil
	default:
		return false, db.HandleError(err)
	}
}
