package netutil

import (
	"net/http"

	"github.com/peoplesmarkets/media/slice"
)

// TemporaryFailureStatusCodes is a slice of temporary status codes which should be retried by default.
var TemporaryFailureStatusCodes = []int{
	http.StatusServiceUnavailable,
}

// IsTemporaryFailure returns a boolean indicating whether the provided status code represents a temporary error and
// should be retried.
func IsTemporaryFailure(status int) bool {
	return slice.ContainsInt(TemporaryFailureStatusCodes, status)
}
