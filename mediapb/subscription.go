package mediapb

// PutMediaSubscriptionRequest upserts one row of the external billing pipeline's subscription projection.
type PutMediaSubscriptionRequest struct {
	MediaSubscriptionID string
	BuyerUserID         string
	OfferID             string
	CurrentPeriodStart  uint64
	CurrentPeriodEnd    uint64
	SubscriptionStatus  string
	PayedAt             uint64
	PayedUntil          uint64
}

type PutMediaSubscriptionResponse struct{}
