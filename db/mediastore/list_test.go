package mediastore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/mediapb"
)

func TestListParamsFilterClauseUnspecified(t *testing.T) {
	params := ListParams{Filter: mediapb.MediaFilter{Field: mediapb.MediaFilterFieldUnspecified}}

	var args []any

	require.Equal(t, "", params.filterClause(&args, 3))
	require.Empty(t, args)
}

func TestListParamsFilterClauseName(t *testing.T) {
	params := ListParams{Filter: mediapb.MediaFilter{Field: mediapb.MediaFilterFieldName, Query: "cat"}}

	args := []any{"booth", "user"}

	clause := params.filterClause(&args, 3)

	require.Equal(t, " AND m.name ILIKE $3", clause)
	require.Equal(t, []any{"booth", "user", "%cat%"}, args)
}

func TestListParamsFilterClauseOfferID(t *testing.T) {
	params := ListParams{Filter: mediapb.MediaFilter{Field: mediapb.MediaFilterFieldOfferID, Query: "offer-1"}}

	args := []any{"booth", "user"}

	clause := params.filterClause(&args, 3)

	require.Equal(t, " AND mo.offer_id = $3", clause)
	require.Equal(t, []any{"booth", "user", "offer-1"}, args)
}
