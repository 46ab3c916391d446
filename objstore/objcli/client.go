// Package objcli exposes a unified 'Client' interface for accessing/managing media objects in the object store.
package objcli

import (
	"context"
	"io"

	"github.com/peoplesmarkets/media/objstore/objval"
)

//go:generate go run github.com/golang/mock/mockgen -source ./client.go -destination ./mock_client.go -package objcli

// Client is a unified interface for accessing/managing objects stored in S3-compatible object storage.
//
// NOTE: Every operation is scoped to a single bucket supplied per-call rather than at construction time, matching
// the teacher's 'objaws' client; the media service itself only ever has one bucket configured, but the interface
// keeps the bucket explicit for testability.
type Client interface {
	// Provider returns the cloud provider this client is interfacing with.
	Provider() objval.Provider

	// GetObject retrieves an object from the store.
	//
	// NOTE: The returned object's body must be closed to avoid resource leaks.
	GetObject(ctx context.Context, bucket, key string) (*objval.Object, error)

	// GetObjectAttrs returns general metadata about the object with the given key.
	GetObjectAttrs(ctx context.Context, bucket, key string) (*objval.ObjectAttrs, error)

	// PutObject creates/overwrites an object in the store with the given key/body.
	//
	// NOTE: The body is required to be a 'ReadSeeker' to support checksum calculation/validation and retries.
	PutObject(ctx context.Context, bucket, key, contentType string, body io.ReadSeeker) error

	// DeleteObjects deletes all the objects with the given keys, ignoring any errors for keys which are not found.
	DeleteObjects(ctx context.Context, bucket string, keys ...string) error

	// DeleteDirectory deletes all the objects which have the given prefix.
	//
	// NOTE: Depending on the underlying client and support from its SDK, this function may batch operations into pages.
	DeleteDirectory(ctx context.Context, bucket, prefix string) error

	// CreateMultipartUpload creates a new multipart upload for the given key, returning the upload id assigned by the
	// object store.
	CreateMultipartUpload(ctx context.Context, bucket, key, contentType string) (string, error)

	// UploadPart uploads a new part for the multipart upload with the given id.
	//
	// NOTE: The part 'number' should be between 1-10,000 and is used for the ordering of parts upon completion.
	UploadPart(ctx context.Context, bucket, id, key string, number int, body io.ReadSeeker) (objval.Part, error)

	// CompleteMultipartUpload completes the multipart upload with the given id, the given parts should be provided in
	// the order that they should be constructed.
	CompleteMultipartUpload(ctx context.Context, bucket, id, key string, parts ...objval.Part) error

	// AbortMultipartUpload aborts the multipart upload with the given id whilst cleaning up any abandoned parts.
	//
	// NOTE: Aborting an upload that is already complete/already aborted is not an error.
	AbortMultipartUpload(ctx context.Context, bucket, id, key string) error
}
