package mediasvc

import (
	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/mediapb"
)

// inlineDataLimit bounds how large an object may be before 'toMediaResponse' stops inlining its bytes into the
// response, per §6 "data inlined only when ... the object is small".
const inlineDataLimit = 1 << 20 // 1 MiB

func toMediaResponse(m *mediastore.Media, data []byte) *mediapb.MediaResponse {
	return &mediapb.MediaResponse{
		MediaID:       m.MediaID,
		OfferIDs:      m.OfferIDs,
		MarketBoothID: m.MarketBoothID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt.Unix(),
		UpdatedAt:     m.UpdatedAt.Unix(),
		Name:          m.Name,
		Data:          data,
	}
}
