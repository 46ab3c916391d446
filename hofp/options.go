package hofp

import (
	"context"

	"github.com/peoplesmarkets/media/system"
)

// Options encapsulates the available options which can be used when creating a worker pool.
type Options struct {
	// Context is used to support cancellation of functions which are either queued, or currently running. Defaults
	// to 'context.Background()'.
	Context context.Context

	// Size dictates the number of goroutines created to process incoming functions. Defaults to the number of vCPUs.
	Size int

	// BufferMultiplier is used to determine the size of the buffered channel used to queue functions, the buffer size
	// is calculated as 'Size * BufferMultiplier'. Defaults to 1.
	BufferMultiplier int

	// LogPrefix is the prefix used when logging errors which occur once teardown has already begun. Defaults to
	// '(hofp)'.
	LogPrefix string
}

func (o *Options) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}

	if o.Size == 0 {
		o.Size = system.NumCPU()
	}

	if o.BufferMultiplier == 0 {
		o.BufferMultiplier = 1
	}

	if o.LogPrefix == "" {
		o.LogPrefix = "(hofp)"
	}
}
