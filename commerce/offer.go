package commerce

// AccessPolicy is the commerce-service's declared access rule for an offer, mirrored here only to the extent the
// authorization layer needs it.
type AccessPolicy string

const (
	AccessPolicyUnspecified  AccessPolicy = ""
	AccessPolicyPublic       AccessPolicy = "public"
	AccessPolicySubscription AccessPolicy = "subscription"
)

// Offer is the subset of commerce-service offer state the media service needs to decide whether a non-owner may
// read a media linked to it.
type Offer struct {
	OfferID             string       `json:"offer_id"`
	OwnerUserID         string       `json:"owner_user_id"`
	AccessPolicy        AccessPolicy `json:"access_policy"`
	SubscriptionOfferID *string      `json:"subscription_offer_id,omitempty"`
}
