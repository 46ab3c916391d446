package mediasvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/commerce"
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/pagination"
)

func TestResolveListParamsDefaults(t *testing.T) {
	page, params, err := resolveListParams(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, pagination.Default(), page)
	require.Equal(t, "created_at", params.OrderColumn)
	require.Equal(t, "DESC", params.Direction)
	require.Equal(t, 10, params.Limit)
	require.Equal(t, 0, params.Offset)
}

func TestResolveListParamsExplicit(t *testing.T) {
	reqPage := &pagination.Pagination{Page: 2, Size: 5}
	orderBy := &mediapb.MediaOrderBy{Field: mediapb.MediaOrderByFieldUpdatedAt, Direction: pagination.DirectionAsc}
	filter := &mediapb.MediaFilter{Field: mediapb.MediaFilterFieldName, Query: "cat"}

	page, params, err := resolveListParams(reqPage, orderBy, filter)
	require.NoError(t, err)
	require.Equal(t, *reqPage, page)
	require.Equal(t, "updated_at", params.OrderColumn)
	require.Equal(t, "ASC", params.Direction)
	require.Equal(t, *filter, params.Filter)
	require.Equal(t, 5, params.Limit)
	require.Equal(t, 5, params.Offset)
}

func TestResolveListParamsInvalidPagination(t *testing.T) {
	_, _, err := resolveListParams(&pagination.Pagination{Page: 0, Size: 5}, nil, nil)
	require.ErrorIs(t, err, pagination.ErrInvalid)
}

func TestCheckReadAccess(t *testing.T) {
	offers := fakeOfferResolver{
		"public-offer": {OfferID: "public-offer", AccessPolicy: commerce.AccessPolicyPublic},
	}
	grant := auth.NewGrant(offers, fakeSubscriptionChecker{})
	s := &Service{grant: grant}

	t.Run("Owner", func(t *testing.T) {
		err := s.checkReadAccess(context.Background(), "owner", &mediastore.Media{UserID: "owner"})
		require.NoError(t, err)
	})

	t.Run("NonOwnerWithPublicOffer", func(t *testing.T) {
		media := &mediastore.Media{UserID: "owner", OfferIDs: []string{"public-offer"}}
		err := s.checkReadAccess(context.Background(), "stranger", media)
		require.NoError(t, err)
	})

	t.Run("NonOwnerDenied", func(t *testing.T) {
		media := &mediastore.Media{UserID: "owner"}
		err := s.checkReadAccess(context.Background(), "stranger", media)
		require.ErrorIs(t, err, auth.ErrPermissionDenied)
	})
}

type fakeOfferResolver map[string]*commerce.Offer

func (f fakeOfferResolver) GetOffer(_ context.Context, offerID string) (*commerce.Offer, error) {
	return f[offerID], nil
}

type fakeSubscriptionChecker map[string]bool

func (f fakeSubscriptionChecker) HasLiveSubscription(
	_ context.Context, buyerUserID, offerID string, _ time.Time,
) (bool, error) {
	return f[buyerUserID+"/"+offerID], nil
}
