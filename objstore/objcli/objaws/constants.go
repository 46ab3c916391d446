package objaws

const (
	// PageSize is the default page size used by AWS.
	PageSize = 1000
)
