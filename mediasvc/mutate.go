package mediasvc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/objstore/objkey"
)

func (s *Service) ownedMedia(ctx context.Context, userID, mediaID string) (*mediastore.Media, error) {
	if err := validateUUID("media_id", mediaID); err != nil {
		return nil, err
	}

	media, err := mediastore.Get(ctx, s.pool, mediaID)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(userID, media.UserID); err != nil {
		return nil, err
	}

	return media, nil
}

// Update implements owner-only §4.4 'update': a new 'file' is written to the existing object-store key before the
// row is touched, so a write failure leaves the row untouched; 'name', if present, is applied in the same
// transaction that bumps 'updated_at'.
func (s *Service) Update(
	ctx context.Context, userID, mediaID string, name *string, upload *mediapb.MediaUpload,
) (*mediapb.MediaResponse, error) {
	media, err := s.ownedMedia(ctx, userID, mediaID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if err := validateNonEmpty("name", *name); err != nil {
			return nil, err
		}
	}

	if upload != nil {
		if err := s.validateUpload(upload); err != nil {
			return nil, err
		}

		if err := s.objStore.PutObject(
			ctx, s.cfg.Bucket, media.DataURL, upload.ContentType, bytes.NewReader(upload.Data),
		); err != nil {
			s.log.Errorf("update media %s: put object: %v", mediaID, err)
			return nil, fmt.Errorf("%w: put object: %s", ErrInternal, err)
		}
	}

	var updated *mediastore.Media

	err = db.WithTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		var txErr error
		updated, txErr = mediastore.Update(ctx, tx, mediaID, userID, mediastore.UpdateParams{Name: name})
		return txErr
	})
	if err != nil {
		s.log.Errorf("update media %s: %v", mediaID, err)
		return nil, fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return toMediaResponse(updated, nil), nil
}

// Delete implements owner-only §4.4 'delete': the row is removed and the object-store prefix is deleted inside the
// same transaction's commit window; an object-store failure aborts the transaction so the row survives for a
// retry.
func (s *Service) Delete(ctx context.Context, userID, mediaID string) error {
	media, err := s.ownedMedia(ctx, userID, mediaID)
	if err != nil {
		return err
	}

	err = db.WithTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, txErr := mediastore.BeginDelete(ctx, tx, mediaID, userID); txErr != nil {
			return txErr
		}

		return s.objStore.DeleteDirectory(ctx, s.cfg.Bucket, objkey.Directory(media.MarketBoothID, mediaID))
	})
	if err != nil {
		s.log.Errorf("delete media %s: %v", mediaID, err)
		return fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return nil
}

// AddMediaToOffer links 'mediaID' to 'offerID', owner-only. The link is idempotent (§8 invariant 4).
func (s *Service) AddMediaToOffer(ctx context.Context, userID, mediaID, offerID string) error {
	if _, err := s.ownedMedia(ctx, userID, mediaID); err != nil {
		return err
	}

	if err := validateUUID("offer_id", offerID); err != nil {
		return err
	}

	if err := mediastore.AddOffer(ctx, s.pool, mediaID, offerID); err != nil {
		s.log.Errorf("add media %s to offer %s: %v", mediaID, offerID, err)
		return fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return nil
}

// RemoveMediaFromOffer unlinks 'mediaID' from 'offerID', owner-only. Removing an absent pair is a no-op (§8
// invariant 5).
func (s *Service) RemoveMediaFromOffer(ctx context.Context, userID, mediaID, offerID string) error {
	if _, err := s.ownedMedia(ctx, userID, mediaID); err != nil {
		return err
	}

	if err := validateUUID("offer_id", offerID); err != nil {
		return err
	}

	if err := mediastore.RemoveOffer(ctx, s.pool, mediaID, offerID); err != nil {
		s.log.Errorf("remove media %s from offer %s: %v", mediaID, offerID, err)
		return fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return nil
}
