package objval

import "fmt"

// Provider represents the cloud provider backing an object store client.
//
// NOTE: The media service only ever talks to S3-compatible storage; the enum is kept (rather than collapsed to a
// single constant) because 'objcli.Client' implementations report their provider for logging purposes, and this
// mirrors the shape other object store clients in the ecosystem expose.
type Provider int

const (
	// ProviderAWS is the AWS S3 (or S3-compatible) cloud provider.
	ProviderAWS Provider = iota + 1
)

// String returns a human readable representation of the cloud provider.
func (p Provider) String() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	}

	panic(fmt.Sprintf("unknown provider %d", p))
}
