package objaws

import (
	"context"

	"github.com/aws/aws-sdk-go/service/s3"
)

// serviceAPI is the minimal subset of functions used from the AWS SDK, this keeps the surface area that needs
// mocking in tests small.
type serviceAPI interface {
	GetObjectWithContext(ctx context.Context, input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
	HeadObjectWithContext(ctx context.Context, input *s3.HeadObjectInput) (*s3.HeadObjectOutput, error)
	PutObjectWithContext(ctx context.Context, input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	DeleteObjectsWithContext(ctx context.Context, input *s3.DeleteObjectsInput) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2PagesWithContext(
		ctx context.Context, input *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool,
	) error
	CreateMultipartUploadWithContext(
		ctx context.Context, input *s3.CreateMultipartUploadInput,
	) (*s3.CreateMultipartUploadOutput, error)
	UploadPartWithContext(ctx context.Context, input *s3.UploadPartInput) (*s3.UploadPartOutput, error)
	CompleteMultipartUploadWithContext(
		ctx context.Context, input *s3.CompleteMultipartUploadInput,
	) (*s3.CompleteMultipartUploadOutput, error)
	AbortMultipartUploadWithContext(
		ctx context.Context, input *s3.AbortMultipartUploadInput,
	) (*s3.AbortMultipartUploadOutput, error)
}
