package mediasvc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/objstore/objkey"
)

// Create implements the §4.5-A inline-create path (when 'upload' is non-nil) and the §4.5-B "create without
// bytes" path that precedes a multipart follow-up (when 'upload' is nil).
//
// The DB insert and the object-store put happen inside the same transaction's lifetime: the row is inserted first,
// then the bytes are put, and only then is the transaction committed. A put failure rolls back the insert so no
// row ever references missing bytes (invariant 2); a post-put commit failure is compensated with a best-effort
// object delete so no bytes outlive their row (the §9 "atomicity gap" note).
func (s *Service) Create(
	ctx context.Context, userID, marketBoothID, name string, upload *mediapb.MediaUpload,
) (*mediapb.MediaResponse, error) {
	if err := validateUUID("market_booth_id", marketBoothID); err != nil {
		return nil, err
	}

	if err := validateNonEmpty("name", name); err != nil {
		return nil, err
	}

	if upload != nil {
		if err := s.validateUpload(upload); err != nil {
			return nil, err
		}
	}

	mediaID := uuid.NewString()

	var key string
	if upload != nil {
		key = objkey.Build(marketBoothID, mediaID, name)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInternal, db.HandleError(err))
	}

	media, err := mediastore.Create(ctx, tx, mediaID, marketBoothID, userID, name, key)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("%w: %s", ErrInternal, err)
	}

	if upload != nil {
		if err := s.objStore.PutObject(ctx, s.cfg.Bucket, key, upload.ContentType, bytes.NewReader(upload.Data)); err != nil {
			_ = tx.Rollback(ctx)
			s.log.Errorf("create media %s: put object: %v", mediaID, err)
			return nil, fmt.Errorf("%w: put object: %s", ErrInternal, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if upload != nil {
			if delErr := s.objStore.DeleteObjects(ctx, s.cfg.Bucket, key); delErr != nil {
				s.log.Warnf("create media %s: best-effort cleanup of %s failed: %v", mediaID, key, delErr)
			}
		}

		return nil, fmt.Errorf("%w: commit: %s", ErrInternal, db.HandleError(err))
	}

	return toMediaResponse(media, nil), nil
}

func (s *Service) validateUpload(upload *mediapb.MediaUpload) error {
	if int64(len(upload.Data)) > s.cfg.FileMaxSize {
		return fmt.Errorf("%w: file exceeds maximum size of %d bytes", ErrInvalidArgument, s.cfg.FileMaxSize)
	}

	if !s.cfg.contentTypeAllowed(upload.ContentType) {
		return fmt.Errorf("%w: content_type %q is not allowed", ErrInvalidArgument, upload.ContentType)
	}

	return nil
}
