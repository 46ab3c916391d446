package auth

import (
	"context"
	"errors"
	"time"

	"github.com/peoplesmarkets/media/commerce"
)

// ErrPermissionDenied is returned when a caller is neither the owner of a media nor covered by an access grant
// (§4.3).
var ErrPermissionDenied = errors.New("auth: permission denied")

// OfferResolver resolves an offer's ownership/access-policy state, satisfied by 'commerce.Client'.
type OfferResolver interface {
	GetOffer(ctx context.Context, offerID string) (*commerce.Offer, error)
}

// SubscriptionChecker reports whether a buyer holds a live subscription to an offer, satisfied by
// 'subscription.Projector'.
type SubscriptionChecker interface {
	HasLiveSubscription(ctx context.Context, buyerUserID, offerID string, now time.Time) (bool, error)
}

// Grant evaluates the §4.3 read-access rule against a set of offer associations.
type Grant struct {
	Offers        OfferResolver
	Subscriptions SubscriptionChecker
}

// NewGrant builds a 'Grant' from its collaborators.
func NewGrant(offers OfferResolver, subscriptions SubscriptionChecker) *Grant {
	return &Grant{Offers: offers, Subscriptions: subscriptions}
}

// RequireOwner enforces the mutating-RPC rule: 'userID' must equal 'ownerUserID', else 'ErrPermissionDenied'
// (§4.3).
func RequireOwner(userID, ownerUserID string) error {
	if userID != ownerUserID {
		return ErrPermissionDenied
	}

	return nil
}

// CanRead evaluates whether 'callerUserID' may read a media owned by 'ownerUserID' and linked to 'offerIDs'.
// Owners always pass; non-owners need at least one linked offer that is public, or subscription-gated with a
// live subscription held by the caller (§4.3).
func (g *Grant) CanRead(ctx context.Context, callerUserID, ownerUserID string, offerIDs []string) (bool, error) {
	if callerUserID == ownerUserID {
		return true, nil
	}

	for _, offerID := range offerIDs {
		offer, err := g.Offers.GetOffer(ctx, offerID)
		if err != nil {
			return false, err
		}

		switch offer.AccessPolicy {
		case commerce.AccessPolicyPublic:
			return true, nil
		case commerce.AccessPolicySubscription:
			live, err := g.Subscriptions.HasLiveSubscription(ctx, callerUserID, subscriptionOfferID(offer), time.Now())
			if err != nil {
				return false, err
			}

			if live {
				return true, nil
			}
		}
	}

	return false, nil
}

// subscriptionOfferID resolves the offer id a live subscription is actually keyed against. The commerce service's
// 'subscription_offer_id' names the canonical subscribable product, which can differ from the offer a media happens
// to be linked to (§4.6); it falls back to the offer's own id only when the commerce service didn't set one.
func subscriptionOfferID(offer *commerce.Offer) string {
	if offer.SubscriptionOfferID != nil {
		return *offer.SubscriptionOfferID
	}

	return offer.OfferID
}

// AccessibleOfferIDs returns the subset of 'offerIDs' that grant 'callerUserID' read access under the §4.3 rule,
// used by 'list_accessible' to build its query predicate.
func (g *Grant) AccessibleOfferIDs(ctx context.Context, callerUserID string, offerIDs []string) ([]string, error) {
	accessible := make([]string, 0, len(offerIDs))

	for _, offerID := range offerIDs {
		offer, err := g.Offers.GetOffer(ctx, offerID)
		if err != nil {
			return nil, err
		}

		switch offer.AccessPolicy {
		case commerce.AccessPolicyPublic:
			accessible = append(accessible, offerID)
		case commerce.AccessPolicySubscription:
			live, err := g.Subscriptions.HasLiveSubscription(ctx, callerUserID, subscriptionOfferID(offer), time.Now())
			if err != nil {
				return nil, err
			}

			if live {
				accessible = append(accessible, offerID)
			}
		}
	}

	return accessible, nil
}
