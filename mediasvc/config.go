package mediasvc

// Config holds the validation limits and object-store target the service needs that aren't collaborator
// constructor arguments in their own right (§4.5, §6 "FILE_MAX_SIZE").
type Config struct {
	// Bucket is the object-store bucket every media's bytes live in.
	Bucket string

	// FileMaxSize bounds the size, in bytes, of an inline 'CreateMedia'/'UpdateMedia' payload. Multipart chunks are
	// not checked against it.
	FileMaxSize int64

	// AllowedContentTypes is the set of MIME types 'CreateMedia'/'UpdateMedia'/'InitiateMultipartUpload' accept.
	// A nil/empty set disables the check (every content type is allowed).
	AllowedContentTypes []string
}

func (c Config) contentTypeAllowed(contentType string) bool {
	if len(c.AllowedContentTypes) == 0 {
		return true
	}

	for _, allowed := range c.AllowedContentTypes {
		if allowed == contentType {
			return true
		}
	}

	return false
}
