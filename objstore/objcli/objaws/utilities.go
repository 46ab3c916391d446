package objaws

import (
	"errors"
	"net"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sns"

	"github.com/peoplesmarkets/media/objstore/objerr"
)

// handleError converts an AWS SDK error into a more useful/specific error where possible, falling back to returning
// it unmodified for anything not handled specifically.
func handleError(bucket, key *string, err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return objerr.ErrEndpointResolutionFailed
	}

	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return err
	}

	switch awsErr.Code() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return objerr.ErrUnauthenticated
	case "AccessDenied":
		return objerr.ErrUnauthorized
	case s3.ErrCodeNoSuchKey:
		return &objerr.NotFoundError{Type: "key", Name: valueOrPlaceholder(key, "key name")}
	case s3.ErrCodeNoSuchBucket:
		return &objerr.NotFoundError{Type: "bucket", Name: valueOrPlaceholder(bucket, "bucket name")}
	case aws.ErrMissingEndpoint.Code():
		return objerr.ErrEndpointResolutionFailed
	}

	return err
}

// valueOrPlaceholder returns the pointed to string, or a "<empty x>" placeholder if it's <nil>.
func valueOrPlaceholder(value *string, name string) string {
	if value == nil {
		return "<empty " + name + ">"
	}

	return *value
}

// isKeyNotFound returns a boolean indicating whether the given error indicates that a key was not found.
func isKeyNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	return awsErr.Code() == s3.ErrCodeNoSuchKey || awsErr.Code() == sns.ErrCodeNotFoundException
}

// isNoSuchUpload returns a boolean indicating whether the given error indicates that a multipart upload no longer
// exists (e.g. it's already been completed/aborted).
func isNoSuchUpload(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	return awsErr.Code() == s3.ErrCodeNoSuchUpload || awsErr.Code() == sns.ErrCodeNotFoundException
}
