package mandel

import (
	"runtime"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

const (
	// DefaultWorkers is the default number of bands per render pass.
	DefaultWorkers = 16

	// DefaultLimit is the default iteration limit. With 255 every escape
	// count maps to a distinct gray level.
	DefaultLimit = 255
)

// Option configures a Renderer.
//
// Example:
//
//	r := mandel.New(mandel.WithWorkers(8), mandel.WithFormat(types.XRGB))
type Option func(*options)

type options struct {
	workers int
	limit   int
	format  types.PixelFormat
}

func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
		limit:   DefaultLimit,
		format:  types.Gray,
	}
}

// WithWorkers sets how many bands a pass is split into and how many run
// at once. Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLimit sets the iteration limit of the escape-time test.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithFormat sets the pixel layout the renderer writes.
func WithFormat(f types.PixelFormat) Option {
	return func(o *options) {
		o.format = f
	}
}
