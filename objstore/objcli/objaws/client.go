// Package objaws implements the 'objcli.Client' interface against AWS S3 (or an S3-compatible store).
package objaws

import (
	"context"
	"io"

	"github.com/peoplesmarkets/media/hofp"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/maths"
	"github.com/peoplesmarkets/media/objstore/objcli"
	"github.com/peoplesmarkets/media/objstore/objval"
	"github.com/peoplesmarkets/media/system"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in AWS S3.
type Client struct {
	serviceAPI serviceAPI
	logger     log.WrappedLogger
}

var _ objcli.Client = (*Client)(nil)

// NewClient returns a new client which uses the given 'serviceAPI', in general this should be backed by the client
// created using the 's3.New' function exposed by the SDK (or an s3.New pointed at an S3-compatible endpoint).
func NewClient(api serviceAPI) *Client {
	return &Client{serviceAPI: api}
}

// WithLogger sets the client's logger, returning the client for chaining. None of the client's operations log
// through it.
func (c *Client) WithLogger(logger log.WrappedLogger) *Client {
	c.logger = logger
	return c
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderAWS
}

func (c *Client) GetObject(ctx context.Context, bucket, key string) (*objval.Object, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	resp, err := c.serviceAPI.GetObjectWithContext(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := objval.ObjectAttrs{
		Key:          key,
		Size:         aws.Int64Value(resp.ContentLength),
		LastModified: resp.LastModified,
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) GetObjectAttrs(ctx context.Context, bucket, key string) (*objval.ObjectAttrs, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	resp, err := c.serviceAPI.HeadObjectWithContext(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := &objval.ObjectAttrs{
		Key:          key,
		ETag:         aws.StringValue(resp.ETag),
		Size:         aws.Int64Value(resp.ContentLength),
		LastModified: resp.LastModified,
	}

	return attrs, nil
}

func (c *Client) PutObject(ctx context.Context, bucket, key, contentType string, body io.ReadSeeker) error {
	input := &s3.PutObjectInput{
		Body:        body,
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	_, err := c.serviceAPI.PutObjectWithContext(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) DeleteObjects(ctx context.Context, bucket string, keys ...string) error {
	pool := hofp.NewPool(hofp.Options{
		Context:   ctx,
		Size:      system.NumWorkers(len(keys)),
		LogPrefix: "(objaws)",
	})

	queue := func(start, end int) error {
		return pool.Queue(func() error {
			return c.deleteObjects(ctx, bucket, keys[start:maths.Min(end, len(keys))]...)
		})
	}

	for start, end := 0, PageSize; start < len(keys); start, end = start+PageSize, end+PageSize {
		if queue(start, end) != nil {
			break
		}
	}

	return pool.Stop()
}

func (c *Client) DeleteDirectory(ctx context.Context, bucket, prefix string) error {
	return c.deleteDirectory(ctx, bucket, prefix, c.deleteObjects)
}

// deleteDirectory is a wrapper function which allows unit testing 'DeleteDirectory' with a mocked deletion callback;
// this avoids a deadlock that would otherwise occur when the callback re-enters a locked mock 'serviceAPI'.
func (c *Client) deleteDirectory(
	ctx context.Context,
	bucket, prefix string,
	fn func(ctx context.Context, bucket string, keys ...string) error,
) error {
	var err error

	callback := func(page *s3.ListObjectsV2Output, _ bool) bool {
		keys := make([]string, 0, len(page.Contents))

		for _, object := range page.Contents {
			keys = append(keys, aws.StringValue(object.Key))
		}

		err = fn(ctx, bucket, keys...)

		return err == nil
	}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	// It's important we use an assignment expression here to avoid overwriting the error assigned by our callback.
	if err := c.serviceAPI.ListObjectsV2PagesWithContext(ctx, input, callback); err != nil {
		return handleError(input.Bucket, nil, err)
	}

	return err
}

// deleteObjects performs a batched delete operation for a single page (<=1000) of keys.
func (c *Client) deleteObjects(ctx context.Context, bucket string, keys ...string) error {
	input := &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3.Delete{Quiet: aws.Bool(true)},
	}

	for _, key := range keys {
		input.Delete.Objects = append(input.Delete.Objects, &s3.ObjectIdentifier{Key: aws.String(key)})
	}

	resp, err := c.serviceAPI.DeleteObjectsWithContext(ctx, input)
	if err != nil {
		return handleError(input.Bucket, nil, err)
	}

	for _, deleteErr := range resp.Errors {
		if awsErr := awserr.New(aws.StringValue(deleteErr.Code), aws.StringValue(deleteErr.Message), nil); !isKeyNotFound(awsErr) {
			return handleError(input.Bucket, deleteErr.Key, awsErr)
		}
	}

	return nil
}

func (c *Client) CreateMultipartUpload(ctx context.Context, bucket, key, contentType string) (string, error) {
	input := &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	resp, err := c.serviceAPI.CreateMultipartUploadWithContext(ctx, input)
	if err != nil {
		return "", handleError(input.Bucket, input.Key, err)
	}

	return aws.StringValue(resp.UploadId), nil
}

func (c *Client) UploadPart(
	ctx context.Context, bucket, id, key string, number int, body io.ReadSeeker,
) (objval.Part, error) {
	size, err := aws.SeekerLen(body)
	if err != nil {
		return objval.Part{}, handleError(aws.String(bucket), aws.String(key), err)
	}

	input := &s3.UploadPartInput{
		Body:          body,
		Bucket:        aws.String(bucket),
		ContentLength: aws.Int64(size),
		Key:           aws.String(key),
		PartNumber:    aws.Int64(int64(number)),
		UploadId:      aws.String(id),
	}

	output, err := c.serviceAPI.UploadPartWithContext(ctx, input)
	if err != nil {
		return objval.Part{}, handleError(input.Bucket, input.Key, err)
	}

	return objval.Part{ID: aws.StringValue(output.ETag), Number: number, Size: size}, nil
}

func (c *Client) CompleteMultipartUpload(ctx context.Context, bucket, id, key string, parts ...objval.Part) error {
	converted := make([]*s3.CompletedPart, len(parts))

	for index, part := range parts {
		converted[index] = &s3.CompletedPart{ETag: aws.String(part.ID), PartNumber: aws.Int64(int64(part.Number))}
	}

	input := &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(bucket),
		Key:             aws.String(key),
		UploadId:        aws.String(id),
		MultipartUpload: &s3.CompletedMultipartUpload{Parts: converted},
	}

	_, err := c.serviceAPI.CompleteMultipartUploadWithContext(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) AbortMultipartUpload(ctx context.Context, bucket, id, key string) error {
	input := &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		UploadId: aws.String(id),
	}

	_, err := c.serviceAPI.AbortMultipartUploadWithContext(ctx, input)
	if err != nil && !isNoSuchUpload(err) {
		return handleError(input.Bucket, input.Key, err)
	}

	return nil
}
