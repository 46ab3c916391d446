package mediapb

import "github.com/peoplesmarkets/media/pagination"

// MediaResponse is the wire shape of a media row plus its aggregated offer associations.
type MediaResponse struct {
	MediaID       string
	OfferIDs      []string
	MarketBoothID string
	UserID        string
	CreatedAt     int64
	UpdatedAt     int64
	Name          string

	// Data is only populated when the caller is the owner and the object is small enough to inline; otherwise it is
	// nil, and the response carries no other reference to the object's bytes.
	Data []byte
}

// MediaUpload is the inline/multipart-chunk payload accompanying a create/update/put-part call.
type MediaUpload struct {
	ContentType string
	Data        []byte
}

type CreateMediaRequest struct {
	MarketBoothID string
	Name          string
	File          *MediaUpload
}

type CreateMediaResponse struct {
	Media *MediaResponse
}

type GetMediaRequest struct {
	MediaID string
}

type GetMediaResponse struct {
	Media *MediaResponse
}

// MediaOrderBy selects an order-by field and direction for a list operation.
type MediaOrderBy struct {
	Field     MediaOrderByField
	Direction pagination.Direction
}

// MediaFilter restricts a list operation to rows matching 'Query' on 'Field'.
type MediaFilter struct {
	Field MediaFilterField
	Query string
}

type ListMediaRequest struct {
	MarketBoothID string
	Pagination    *pagination.Pagination
	OrderBy       *MediaOrderBy
	Filter        *MediaFilter
}

type ListMediaResponse struct {
	Medias     []*MediaResponse
	Pagination pagination.Pagination
}

type ListAccessibleMediaRequest struct {
	Pagination *pagination.Pagination
	OrderBy    *MediaOrderBy
	Filter     *MediaFilter
}

type ListAccessibleMediaResponse struct {
	Medias     []*MediaResponse
	Pagination pagination.Pagination
}

type UpdateMediaRequest struct {
	MediaID string
	Name    *string
	File    *MediaUpload
}

type UpdateMediaResponse struct {
	Media *MediaResponse
}

type DeleteMediaRequest struct {
	MediaID string
}

type DeleteMediaResponse struct{}

type InitiateMultipartUploadRequest struct {
	MediaID     string
	ContentType string
}

type InitiateMultipartUploadResponse struct {
	Key      string
	UploadID string
}

type PutMultipartChunkRequest struct {
	MediaID    string
	UploadID   string
	PartNumber uint32
	Chunk      []byte
}

// Part is an uploaded part's number/etag pair, both at upload time (the server's response) and at complete time
// (the caller's echoed manifest).
type Part struct {
	PartNumber uint32
	ETag       string
}

type PutMultipartChunkResponse struct {
	Part *Part
}

type CompleteMultipartUploadRequest struct {
	MediaID  string
	UploadID string
	Parts    []Part
}

type CompleteMultipartUploadResponse struct{}

type AddMediaToOfferRequest struct {
	MediaID string
	OfferID string
}

type AddMediaToOfferResponse struct{}

type RemoveMediaFromOfferRequest struct {
	MediaID string
	OfferID string
}

type RemoveMediaFromOfferResponse struct{}
