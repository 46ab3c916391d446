package mediastore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/db"
)

// DistinctOfferIDs returns every distinct offer id linked to at least one media, the candidate set
// 'auth.Grant.AccessibleOfferIDs' filters down to the offers a given caller may read (§4.3).
func DistinctOfferIDs(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT DISTINCT offer_id FROM media_offers`)
	if err != nil {
		return nil, db.HandleError(err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])

	return ids, db.HandleError(err)
}

// AddOffer links a media to an offer. The insert is idempotent: a pre-existing association is treated as success,
// matching the teacher's general "the second call is not an error" pattern (closest analogue:
// 'objaws.AbortMultipartUpload' swallowing an already-gone upload).
func AddOffer(ctx context.Context, pool *pgxpool.Pool, mediaID, offerID string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO media_offers (media_id, offer_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, mediaID, offerID)

	return db.HandleError(err)
}

// RemoveOffer unlinks a media from an offer. Removing a pair that doesn't exist is a no-op that returns success.
func RemoveOffer(ctx context.Context, pool *pgxpool.Pool, mediaID, offerID string) error {
	_, err := pool.Exec(ctx, `
		DELETE FROM media_offers WHERE media_id = $1 AND offer_id = $2
	`, mediaID, offerID)

	return db.HandleError(err)
}
