package mediasvc

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/db/mediastore"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/objstore/objcli"
	"github.com/peoplesmarkets/media/objstore/objval"
)

func TestInlineData(t *testing.T) {
	objStore := objcli.NewTestClient(t, objval.ProviderAWS)
	bucket := "media"

	s := &Service{
		objStore: objStore,
		cfg:      Config{Bucket: bucket},
		log:      log.NewWrappedLogger(log.StdoutLogger{}),
	}

	t.Run("SmallObjectInlined", func(t *testing.T) {
		require.NoError(t, objStore.PutObject(context.Background(), bucket, "b1/m1/cat.jpg", "image/jpeg", bytes.NewReader([]byte("meow"))))

		data, err := s.inlineData(context.Background(), &mediastore.Media{DataURL: "b1/m1/cat.jpg"})
		require.NoError(t, err)
		require.Equal(t, []byte("meow"), data)
	})

	t.Run("LargeObjectNotInlined", func(t *testing.T) {
		large := bytes.Repeat([]byte("a"), inlineDataLimit+1)
		require.NoError(t, objStore.PutObject(context.Background(), bucket, "b1/m2/vid.mp4", "video/mp4", bytes.NewReader(large)))

		data, err := s.inlineData(context.Background(), &mediastore.Media{DataURL: "b1/m2/vid.mp4"})
		require.NoError(t, err)
		require.Nil(t, data)
	})
}
