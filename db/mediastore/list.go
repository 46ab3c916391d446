package mediastore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/mediapb"
)

// ListParams narrows/orders/paginates a list query; a zero-value 'Filter.Field' matches every row.
type ListParams struct {
	OrderColumn string
	Direction   string
	Filter      mediapb.MediaFilter
	Limit       int
	Offset      int
}

func (p ListParams) filterClause(args *[]any, paramOffset int) string {
	switch p.Filter.Field {
	case mediapb.MediaFilterFieldName:
		*args = append(*args, "%"+p.Filter.Query+"%")
		return fmt.Sprintf(" AND m.name ILIKE $%d", paramOffset)
	case mediapb.MediaFilterFieldOfferID:
		*args = append(*args, p.Filter.Query)
		return fmt.Sprintf(" AND mo.offer_id = $%d", paramOffset)
	default:
		return ""
	}
}

// List returns the rows scoped to '(marketBoothID, userID)' for an owner listing, plus the total row count ignoring
// pagination (used to echo back accurate pagination).
func List(
	ctx context.Context, pool *pgxpool.Pool, marketBoothID, userID string, params ListParams,
) ([]*Media, int, error) {
	args := []any{marketBoothID, userID}
	filter := params.filterClause(&args, 3)

	countQuery := `
		SELECT COUNT(DISTINCT m.media_id)
		FROM medias m
		LEFT JOIN media_offers mo ON mo.media_id = m.media_id
		WHERE m.market_booth_id = $1 AND m.user_id = $2
	` + filter

	total, err := count(ctx, pool, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := selectWithRelations + `
		WHERE m.market_booth_id = $1 AND m.user_id = $2
	` + filter + fmt.Sprintf(`
		GROUP BY m.media_id
		ORDER BY m.%s %s
		LIMIT %d OFFSET %d
	`, params.OrderColumn, params.Direction, params.Limit, params.Offset)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, db.HandleError(err)
	}
	defer rows.Close()

	medias, err := pgx.CollectRows(rows, scanMedia)

	return medias, total, db.HandleError(err)
}

// ListAccessible returns the set a caller can read under the §4.3 access rule: rows they own, plus rows linked to
// any offer in 'accessibleOfferIDs' (offers whose commerce policy is public, or subscription-gated with a live
// subscription held by the caller). It is intentionally not scoped to a 'market_booth_id' (see DESIGN.md).
func ListAccessible(
	ctx context.Context, pool *pgxpool.Pool, userID string, accessibleOfferIDs []string, params ListParams,
) ([]*Media, int, error) {
	args := []any{userID, accessibleOfferIDs}
	filter := params.filterClause(&args, 3)

	countQuery := `
		SELECT COUNT(DISTINCT m.media_id)
		FROM medias m
		LEFT JOIN media_offers mo ON mo.media_id = m.media_id
		WHERE (m.user_id = $1 OR mo.offer_id = ANY($2))
	` + filter

	total, err := count(ctx, pool, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := selectWithRelations + `
		WHERE (m.user_id = $1 OR mo.offer_id = ANY($2))
	` + filter + fmt.Sprintf(`
		GROUP BY m.media_id
		ORDER BY m.%s %s
		LIMIT %d OFFSET %d
	`, params.OrderColumn, params.Direction, params.Limit, params.Offset)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, db.HandleError(err)
	}
	defer rows.Close()

	medias, err := pgx.CollectRows(rows, scanMedia)

	return medias, total, db.HandleError(err)
}

func count(ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (int, error) {
	var total int

	err := pool.QueryRow(ctx, query, args...).Scan(&total)

	return total, db.HandleError(err)
}
