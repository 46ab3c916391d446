// Package mediastore is the typed row mapper and query surface over the 'medias'/'media_offers'/'media_subscriptions'
// tables, following the teacher's "select-with-relations builder + row-to-struct conversion" split
// ('databases/sqlite' adapted here to 'pgx').
package mediastore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/db"
)

// Media is the row-plus-aggregate shape returned by every read query: the 'medias' row plus the 'offer_id's it's
// linked to via 'media_offers', aggregated in a single round trip (left join + group by).
type Media struct {
	MediaID       string
	OfferIDs      []string
	MarketBoothID string
	UserID        string
	Name          string
	DataURL       string
	PendingUpload bool
	UploadID      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// selectWithRelations is shared by every read query; 'mo.offer_id' is aggregated with a NULL filter so a media with
// no offers returns an empty (not a single-NULL-element) slice.
const selectWithRelations = `
SELECT
	m.media_id, m.market_booth_id, m.user_id, m.name, m.data_url, m.pending_upload, m.upload_id,
	m.created_at, m.updated_at,
	COALESCE(array_agg(mo.offer_id) FILTER (WHERE mo.offer_id IS NOT NULL), '{}') AS offer_ids
FROM medias m
LEFT JOIN media_offers mo ON mo.media_id = m.media_id
`

func scanMedia(row pgx.CollectableRow) (*Media, error) {
	var m Media

	err := row.Scan(
		&m.MediaID, &m.MarketBoothID, &m.UserID, &m.Name, &m.DataURL, &m.PendingUpload, &m.UploadID,
		&m.CreatedAt, &m.UpdatedAt, &m.OfferIDs,
	)

	return &m, err
}

// Create inserts a new media row, in state 'committed' if 'dataURL' already points at real bytes, or 'pending' if
// the caller intends to follow up with a multipart upload.
func Create(ctx context.Context, tx pgx.Tx, mediaID, marketBoothID, userID, name, dataURL string) (*Media, error) {
	rows, err := tx.Query(ctx, `
		INSERT INTO medias (media_id, market_booth_id, user_id, name, data_url, pending_upload)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING media_id, market_booth_id, user_id, name, data_url, pending_upload, upload_id,
			created_at, updated_at, '{}'::text[]
	`, mediaID, marketBoothID, userID, name, dataURL, dataURL == "")
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	media, err := pgx.CollectExactlyOneRow(rows, scanMedia)

	return media, db.HandleError(err)
}

// Get returns the media with the given id, or a 'db.NotFoundError' if it doesn't exist.
func Get(ctx context.Context, pool *pgxpool.Pool, mediaID string) (*Media, error) {
	rows, err := pool.Query(ctx, selectWithRelations+`
		WHERE m.media_id = $1
		GROUP BY m.media_id
	`, mediaID)
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	media, err := pgx.CollectExactlyOneRow(rows, scanMedia)

	return media, db.HandleError(err)
}

// UpdateParams describes an owner-initiated mutation of a media row; a <nil> field is left unchanged.
type UpdateParams struct {
	Name    *string
	DataURL *string
}

// Update applies 'params' to the media owned by 'userID', bumping 'updated_at', and returns the updated row.
func Update(ctx context.Context, tx pgx.Tx, mediaID, userID string, params UpdateParams) (*Media, error) {
	rows, err := tx.Query(ctx, `
		UPDATE medias
		SET
			name = COALESCE($3, name),
			data_url = COALESCE($4, data_url),
			updated_at = now()
		WHERE media_id = $1 AND user_id = $2
		RETURNING media_id, market_booth_id, user_id, name, data_url, pending_upload, upload_id,
			created_at, updated_at, '{}'::text[]
	`, mediaID, userID, params.Name, params.DataURL)
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	media, err := pgx.CollectExactlyOneRow(rows, scanMedia)

	return media, db.HandleError(err)
}

// SetUploadState transitions a media's multipart state, used by the initiate/complete/abort steps of the upload
// pipeline. Passing a <nil> 'uploadID' clears it (abort/complete); a non-nil value sets it (initiate).
func SetUploadState(
	ctx context.Context, tx pgx.Tx, mediaID, userID string, pending bool, uploadID *string, dataURL *string,
) (*Media, error) {
	rows, err := tx.Query(ctx, `
		UPDATE medias
		SET
			pending_upload = $3,
			upload_id = $4,
			data_url = COALESCE($5, data_url),
			updated_at = now()
		WHERE media_id = $1 AND user_id = $2
		RETURNING media_id, market_booth_id, user_id, name, data_url, pending_upload, upload_id,
			created_at, updated_at, '{}'::text[]
	`, mediaID, userID, pending, uploadID, dataURL)
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	media, err := pgx.CollectExactlyOneRow(rows, scanMedia)

	return media, db.HandleError(err)
}

// BeginDelete deletes the media row owned by 'userID', returning the deleted row so the caller can clean up its
// object-store prefix after the transaction commits.
func BeginDelete(ctx context.Context, tx pgx.Tx, mediaID, userID string) (*Media, error) {
	rows, err := tx.Query(ctx, `
		DELETE FROM medias
		WHERE media_id = $1 AND user_id = $2
		RETURNING media_id, market_booth_id, user_id, name, data_url, pending_upload, upload_id,
			created_at, updated_at, '{}'::text[]
	`, mediaID, userID)
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	media, err := pgx.CollectExactlyOneRow(rows, scanMedia)

	return media, db.HandleError(err)
}
