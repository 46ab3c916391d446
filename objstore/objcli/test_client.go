package objcli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/objstore/objerr"
	"github.com/peoplesmarkets/media/objstore/objval"
	"github.com/peoplesmarkets/media/testutil"
)

// TestClient is an implementation of the 'Client' interface which stores state in memory, used to avoid having to
// stand up real S3-compatible storage (or hand-write a mock) for every unit test that touches the object store.
type TestClient struct {
	t        *testing.T
	lock     sync.RWMutex
	provider objval.Provider

	// Buckets is the in memory state maintained by the client. Internally, access is guarded by a mutex, however,
	// it's not safe/recommended to access this attribute whilst a test is running; it should only be used to
	// inspect state (to perform assertions) once testing is complete.
	Buckets objval.TestBuckets
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a new test client, which has no buckets/objects.
func NewTestClient(t *testing.T, provider objval.Provider) *TestClient {
	return &TestClient{
		t:        t,
		provider: provider,
		Buckets:  make(objval.TestBuckets),
	}
}

func (c *TestClient) Provider() objval.Provider {
	return c.provider
}

func (c *TestClient) GetObject(_ context.Context, bucket, key string) (*objval.Object, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	object, err := c.getObjectRLocked(bucket, key)
	if err != nil {
		return nil, err
	}

	return &objval.Object{
		ObjectAttrs: object.ObjectAttrs,
		Body:        io.NopCloser(bytes.NewReader(object.Body)),
	}, nil
}

func (c *TestClient) GetObjectAttrs(_ context.Context, bucket, key string) (*objval.ObjectAttrs, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	object, err := c.getObjectRLocked(bucket, key)
	if err != nil {
		return nil, err
	}

	return &object.ObjectAttrs, nil
}

func (c *TestClient) PutObject(_ context.Context, bucket, key, _ string, body io.ReadSeeker) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	_ = c.putObjectLocked(bucket, key, body)

	return nil
}

func (c *TestClient) DeleteObjects(_ context.Context, bucket string, keys ...string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	b := c.getBucketLocked(bucket)

	for _, key := range keys {
		delete(b, key)
	}

	return nil
}

func (c *TestClient) DeleteDirectory(_ context.Context, bucket, prefix string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.deleteKeysLocked(bucket, prefix)
}

func (c *TestClient) CreateMultipartUpload(_ context.Context, _, _, _ string) (string, error) {
	return uuid.NewString(), nil
}

func (c *TestClient) UploadPart(
	_ context.Context, bucket, id, key string, number int, body io.ReadSeeker,
) (objval.Part, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	size, err := aws.SeekerLen(body)
	require.NoError(c.t, err)

	part := objval.Part{
		ID:     c.putObjectLocked(bucket, partKey(id, key), body),
		Number: number,
		Size:   size,
	}

	return part, nil
}

func (c *TestClient) CompleteMultipartUpload(
	_ context.Context, bucket, id, key string, parts ...objval.Part,
) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	buffer := &bytes.Buffer{}

	for _, part := range parts {
		object, err := c.getObjectRLocked(bucket, part.ID)
		if err != nil {
			return err
		}

		buffer.Write(object.Body)
	}

	_ = c.putObjectLocked(bucket, key, bytes.NewReader(buffer.Bytes()))

	return c.deleteKeysLocked(bucket, partPrefix(id, key))
}

func (c *TestClient) AbortMultipartUpload(_ context.Context, bucket, id, key string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.deleteKeysLocked(bucket, partPrefix(id, key))
}

func (c *TestClient) getBucketLocked(bucket string) objval.TestBucket {
	_, ok := c.Buckets[bucket]
	if !ok {
		c.Buckets[bucket] = make(objval.TestBucket)
	}

	return c.Buckets[bucket]
}

// NOTE: Buckets are automatically created by the test client when required, so this returns a not found error if
// either the bucket/object don't exist.
func (c *TestClient) getObjectRLocked(bucket, key string) (*objval.TestObject, error) {
	b, ok := c.Buckets[bucket]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "object", Name: key}
	}

	o, ok := b[key]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "object", Name: key}
	}

	return o, nil
}

func (c *TestClient) putObjectLocked(bucket, key string, body io.ReadSeeker) string {
	var (
		now  = time.Now()
		data = testutil.ReadAll(c.t, body)
	)

	attrs := objval.ObjectAttrs{
		Key:          key,
		ETag:         strings.ReplaceAll(uuid.NewString(), "-", ""),
		Size:         int64(len(data)),
		LastModified: &now,
	}

	b := c.getBucketLocked(bucket)

	b[key] = &objval.TestObject{
		ObjectAttrs: attrs,
		Body:        data,
	}

	return attrs.Key
}

func (c *TestClient) deleteKeysLocked(bucket, prefix string) error {
	b := c.getBucketLocked(bucket)

	for key := range b {
		if strings.HasPrefix(key, prefix) {
			delete(b, key)
		}
	}

	return nil
}

// partKey returns a key which should be used for an in-progress multipart upload part. Keys are prefixed with
// 'basename(key)-mpu-<id>-' allowing efficient cleanup by prefix upon completion/abort.
func partKey(id, key string) string {
	return path.Join(path.Dir(key), fmt.Sprintf("%s-mpu-%s-%s", path.Base(key), id, uuid.New()))
}

// partPrefix returns the prefix used for all parts of the given upload for the provided key.
func partPrefix(id, key string) string {
	return fmt.Sprintf("%s-mpu-%s", key, id)
}
