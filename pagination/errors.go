package pagination

import "errors"

// ErrInvalid is wrapped by any pagination/ordering/filter validation failure, surfaced by the service layer as
// invalid-argument.
var ErrInvalid = errors.New("invalid pagination")
