package testutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadAll reads the given reader to completion, fatally terminating the current test in the event of a failure.
func ReadAll(t *testing.T, r io.Reader) []byte {
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return data
}
