package mediasvc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/mediapb"
)

func TestValidateUpload(t *testing.T) {
	s := &Service{cfg: Config{
		FileMaxSize:         4,
		AllowedContentTypes: []string{"image/jpeg"},
	}}

	require.NoError(t, s.validateUpload(&mediapb.MediaUpload{ContentType: "image/jpeg", Data: []byte("abcd")}))

	err := s.validateUpload(&mediapb.MediaUpload{ContentType: "image/jpeg", Data: []byte("abcde")})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = s.validateUpload(&mediapb.MediaUpload{ContentType: "application/pdf", Data: []byte("ab")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
