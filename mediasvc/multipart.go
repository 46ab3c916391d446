package mediasvc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/objstore/objkey"
	"github.com/peoplesmarkets/media/objstore/objval"
)

// InitiateMultipartUpload starts the §4.5-B upload pipeline on an existing, owned media row, transitioning it into
// the 'uploading(upload_id)' state.
func (s *Service) InitiateMultipartUpload(
	ctx context.Context, userID, mediaID, contentType string,
) (key, uploadID string, err error) {
	media, err := s.ownedMedia(ctx, userID, mediaID)
	if err != nil {
		return "", "", err
	}

	if !s.cfg.contentTypeAllowed(contentType) {
		return "", "", fmt.Errorf("%w: content_type %q is not allowed", ErrInvalidArgument, contentType)
	}

	key = objkey.Build(media.MarketBoothID, mediaID, media.Name)

	uploadID, err = s.objStore.CreateMultipartUpload(ctx, s.cfg.Bucket, key, contentType)
	if err != nil {
		s.log.Errorf("initiate multipart upload for media %s: %v", mediaID, err)
		return "", "", fmt.Errorf("%w: create multipart upload: %s", ErrInternal, err)
	}

	err = db.WithTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		_, txErr := mediastore.SetUploadState(ctx, tx, mediaID, userID, true, &uploadID, &key)
		return txErr
	})
	if err != nil {
		s.log.Errorf("initiate multipart upload for media %s: %v", mediaID, err)
		return "", "", fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return key, uploadID, nil
}

func (s *Service) requireMatchingUpload(media *mediastore.Media, uploadID string) error {
	if media.UploadID == nil || *media.UploadID != uploadID {
		return fmt.Errorf("%w: no in-progress upload %q for this media", ErrFailedPrecondition, uploadID)
	}

	return nil
}

// PutMultipartChunk uploads one part of an in-progress multipart upload; the server does not persist the parts
// list, matching §4.5-B ("the client is authoritative for it").
func (s *Service) PutMultipartChunk(
	ctx context.Context, userID, mediaID, uploadID string, partNumber uint32, chunk []byte,
) (*mediapb.Part, error) {
	media, err := s.ownedMedia(ctx, userID, mediaID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMatchingUpload(media, uploadID); err != nil {
		return nil, err
	}

	if err := validatePartNumber(partNumber); err != nil {
		return nil, err
	}

	part, err := s.objStore.UploadPart(
		ctx, s.cfg.Bucket, uploadID, media.DataURL, int(partNumber), bytes.NewReader(chunk),
	)
	if err != nil {
		s.log.Errorf("upload part %d for media %s upload %s: %v", partNumber, mediaID, uploadID, err)
		return nil, fmt.Errorf("%w: upload part: %s", ErrInternal, err)
	}

	return &mediapb.Part{PartNumber: uint32(part.Number), ETag: part.ID}, nil
}

// CompleteMultipartUpload finalizes an in-progress multipart upload, committing the row into the 'committed' state
// on success. On an object-store failure the row is left in 'uploading' so the caller may retry (§4.5-B).
func (s *Service) CompleteMultipartUpload(
	ctx context.Context, userID, mediaID, uploadID string, parts []mediapb.Part,
) error {
	media, err := s.ownedMedia(ctx, userID, mediaID)
	if err != nil {
		return err
	}

	if err := s.requireMatchingUpload(media, uploadID); err != nil {
		return err
	}

	numbers := make([]uint32, len(parts))
	objvalParts := make([]objval.Part, len(parts))

	for i, p := range parts {
		numbers[i] = p.PartNumber
		objvalParts[i] = objval.Part{ID: p.ETag, Number: int(p.PartNumber)}
	}

	if err := validatePartsAscending(numbers); err != nil {
		return err
	}

	if err := s.objStore.CompleteMultipartUpload(
		ctx, s.cfg.Bucket, uploadID, media.DataURL, objvalParts...,
	); err != nil {
		s.log.Errorf("complete multipart upload for media %s upload %s: %v", mediaID, uploadID, err)
		return fmt.Errorf("%w: complete multipart upload: %s", ErrInternal, err)
	}

	err = db.WithTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		_, txErr := mediastore.SetUploadState(ctx, tx, mediaID, userID, false, nil, nil)
		return txErr
	})
	if err != nil {
		s.log.Errorf("complete multipart upload for media %s upload %s: %v", mediaID, uploadID, err)
		return fmt.Errorf("%w: %s", ErrInternal, err)
	}

	return nil
}
