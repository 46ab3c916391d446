package objcli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/objstore/objerr"
	"github.com/peoplesmarkets/media/testutil"
)

// TestUploadRAW uploads the given raw data to "bucket".
func TestUploadRAW(t *testing.T, client Client, key string, body []byte) {
	require.NoError(t, client.PutObject(context.Background(), "bucket", key, "application/octet-stream", bytes.NewReader(body)))
}

// TestDownloadRAW downloads the object as raw data from "bucket".
func TestDownloadRAW(t *testing.T, client Client, key string) []byte {
	object, err := client.GetObject(context.Background(), "bucket", key)
	require.NoError(t, err)

	defer object.Body.Close()

	return testutil.ReadAll(t, object.Body)
}

// TestRequireKeyExists asserts that the given key exists in "bucket".
func TestRequireKeyExists(t *testing.T, client Client, key string) {
	_, err := client.GetObjectAttrs(context.Background(), "bucket", key)
	require.NoError(t, err)
}

// TestRequireKeyNotFound asserts that the given key does not exist in "bucket".
func TestRequireKeyNotFound(t *testing.T, client Client, key string) {
	_, err := client.GetObjectAttrs(context.Background(), "bucket", key)
	require.True(t, objerr.IsNotFoundError(err))
}
