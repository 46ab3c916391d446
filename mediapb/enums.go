// Package mediapb holds the request/response DTOs exchanged over the RPC surface, standing in for the
// protoc-generated code the original 'peoplesmarkets.media.v1'/'peoplesmarkets.pagination.v1' proto package would
// produce. Wire framing itself is an out-of-scope external collaborator, so this package is kept deliberately thin:
// plain structs, no codegen machinery.
package mediapb

// MediaOrderByField selects which column 'ListMedia'/'ListAccessibleMedia' sorts by.
type MediaOrderByField int

const (
	MediaOrderByFieldUnspecified MediaOrderByField = iota
	MediaOrderByFieldCreatedAt
	MediaOrderByFieldUpdatedAt
)

// String returns the stable wire name for the field, e.g. "MEDIA_ORDER_BY_FIELD_CREATED_AT".
func (f MediaOrderByField) String() string {
	switch f {
	case MediaOrderByFieldCreatedAt:
		return "MEDIA_ORDER_BY_FIELD_CREATED_AT"
	case MediaOrderByFieldUpdatedAt:
		return "MEDIA_ORDER_BY_FIELD_UPDATED_AT"
	default:
		return "MEDIA_ORDER_BY_FIELD_UNSPECIFIED"
	}
}

// Column returns the SQL column backing the field, defaulting to 'created_at'.
func (f MediaOrderByField) Column() string {
	if f == MediaOrderByFieldUpdatedAt {
		return "updated_at"
	}

	return "created_at"
}

// MediaFilterField selects which predicate 'MediaFilter.Query' is matched against.
type MediaFilterField int

const (
	MediaFilterFieldUnspecified MediaFilterField = iota
	MediaFilterFieldName
	MediaFilterFieldOfferID
)

// String returns the stable wire name for the field, e.g. "MEDIA_FILTER_FIELD_NAME".
func (f MediaFilterField) String() string {
	switch f {
	case MediaFilterFieldName:
		return "MEDIA_FILTER_FIELD_NAME"
	case MediaFilterFieldOfferID:
		return "MEDIA_FILTER_FIELD_OFFER_ID"
	default:
		return "MEDIA_FILTER_FIELD_UNSPECIFIED"
	}
}
