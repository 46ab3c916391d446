package objerr

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when an operation references a bucket/key which doesn't exist in the object store.
type NotFoundError struct {
	// Type is a human readable description of what wasn't found e.g. "object" or "bucket".
	Type string

	// Name is the name/key which wasn't found.
	Name string
}

// Error implements the 'error' interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("failed to find %s '%s'", e.Type, e.Name)
}

// IsNotFoundError returns a boolean indicating whether the given error is/wraps a 'NotFoundError'.
func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}
