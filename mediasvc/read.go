package mediasvc

import (
	"context"
	"fmt"
	"io"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/pagination"
)

// Get returns the media plus its aggregated offer ids, applying the §4.3 access rules: the owner always passes;
// a non-owner needs an access grant evaluated over the media's linked offers. The owner additionally gets the
// object's bytes inlined into the response when the object is small enough (§6 "data inlined only when the caller
// is the owner and the object is small"); a non-owner, or an owner of a large object, gets a nil 'Data'.
func (s *Service) Get(ctx context.Context, callerUserID, mediaID string) (*mediapb.MediaResponse, error) {
	if err := validateUUID("media_id", mediaID); err != nil {
		return nil, err
	}

	media, err := mediastore.Get(ctx, s.pool, mediaID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, callerUserID, media); err != nil {
		return nil, err
	}

	var data []byte
	if callerUserID == media.UserID && !media.PendingUpload {
		data, err = s.inlineData(ctx, media)
		if err != nil {
			return nil, err
		}
	}

	return toMediaResponse(media, data), nil
}

// inlineData fetches the object's bytes for inlining, returning nil (not an error) when the object exceeds
// 'inlineDataLimit'.
func (s *Service) inlineData(ctx context.Context, media *mediastore.Media) ([]byte, error) {
	attrs, err := s.objStore.GetObjectAttrs(ctx, s.cfg.Bucket, media.DataURL)
	if err != nil {
		return nil, fmt.Errorf("%w: get object attrs: %s", ErrInternal, err)
	}

	if attrs.Size > inlineDataLimit {
		return nil, nil
	}

	obj, err := s.objStore.GetObject(ctx, s.cfg.Bucket, media.DataURL)
	if err != nil {
		return nil, fmt.Errorf("%w: get object: %s", ErrInternal, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object body: %s", ErrInternal, err)
	}

	return data, nil
}

func (s *Service) checkReadAccess(ctx context.Context, callerUserID string, media *mediastore.Media) error {
	allowed, err := s.grant.CanRead(ctx, callerUserID, media.UserID, media.OfferIDs)
	if err != nil {
		return fmt.Errorf("%w: access grant check: %s", ErrInternal, err)
	}

	if !allowed {
		return auth.ErrPermissionDenied
	}

	return nil
}

func resolveListParams(
	reqPagination *pagination.Pagination, orderBy *mediapb.MediaOrderBy, filter *mediapb.MediaFilter,
) (pagination.Pagination, mediastore.ListParams, error) {
	page := pagination.Default()
	if reqPagination != nil {
		page = *reqPagination
	}

	if err := page.Validate(); err != nil {
		return pagination.Pagination{}, mediastore.ListParams{}, err
	}

	params := mediastore.ListParams{
		OrderColumn: mediapb.MediaOrderByFieldCreatedAt.Column(),
		Direction:   pagination.DirectionDesc.SQL(),
	}

	if orderBy != nil {
		params.OrderColumn = orderBy.Field.Column()
		params.Direction = orderBy.Direction.SQL()
	}

	if filter != nil {
		params.Filter = *filter
	}

	limit, offset := page.LimitOffset()
	params.Limit, params.Offset = limit, offset

	return page, params, nil
}

// List returns rows scoped to '(marketBoothID, userID)', the owner-listing shape of §4.4.
func (s *Service) List(
	ctx context.Context, userID, marketBoothID string,
	reqPagination *pagination.Pagination, orderBy *mediapb.MediaOrderBy, filter *mediapb.MediaFilter,
) ([]*mediapb.MediaResponse, pagination.Pagination, error) {
	if err := validateUUID("market_booth_id", marketBoothID); err != nil {
		return nil, pagination.Pagination{}, err
	}

	page, params, err := resolveListParams(reqPagination, orderBy, filter)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	rows, _, err := mediastore.List(ctx, s.pool, marketBoothID, userID, params)
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("%w: %s", ErrInternal, db.HandleError(err))
	}

	return toMediaResponses(rows), page, nil
}

// ListAccessible returns the set a caller can read across every tenant, restricted by the §4.3 access rule; it is
// intentionally not scoped to a market booth (§9 open question, resolved global).
func (s *Service) ListAccessible(
	ctx context.Context, userID string,
	reqPagination *pagination.Pagination, orderBy *mediapb.MediaOrderBy, filter *mediapb.MediaFilter,
) ([]*mediapb.MediaResponse, pagination.Pagination, error) {
	page, params, err := resolveListParams(reqPagination, orderBy, filter)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	offerIDs, err := mediastore.DistinctOfferIDs(ctx, s.pool)
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("%w: %s", ErrInternal, db.HandleError(err))
	}

	accessibleOfferIDs, err := s.grant.AccessibleOfferIDs(ctx, userID, offerIDs)
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("%w: access grant check: %s", ErrInternal, err)
	}

	rows, _, err := mediastore.ListAccessible(ctx, s.pool, userID, accessibleOfferIDs, params)
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("%w: %s", ErrInternal, db.HandleError(err))
	}

	return toMediaResponses(rows), page, nil
}

func toMediaResponses(rows []*mediastore.Media) []*mediapb.MediaResponse {
	responses := make([]*mediapb.MediaResponse, len(rows))
	for i, row := range rows {
		responses[i] = toMediaResponse(row, nil)
	}

	return responses
}
