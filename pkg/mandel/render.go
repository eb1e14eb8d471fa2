package mandel

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

// Renderer runs render passes. It holds no per-pass state, so one
// Renderer can serve concurrent passes into different buffers.
type Renderer struct {
	workers int
	limit   int
	format  types.PixelFormat
}

// New returns a Renderer with 16 workers, an iteration limit of 255 and
// gray output unless options say otherwise. It panics on a limit below 1.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 1 {
		panic(fmt.Sprintf("mandel: iteration limit %d", o.limit))
	}
	o.format.BytesPerPixel() // panics on unknown formats

	return &Renderer{
		workers: o.workers,
		limit:   o.limit,
		format:  o.format,
	}
}

// Workers returns the number of bands a pass is split into.
func (r *Renderer) Workers() int {
	return r.workers
}

func (r *Renderer) Limit() int {
	return r.limit
}

func (r *Renderer) Format() types.PixelFormat {
	return r.format
}

// FrameSize returns the buffer length Render expects for an image of size b.
func (r *Renderer) FrameSize(b types.Bounds) int {
	return b.Pixels() * r.format.BytesPerPixel()
}

// Render fills buf with the image of vp at size b and returns once every
// band is done. len(buf) must equal r.FrameSize(b).
func (r *Renderer) Render(buf []byte, b types.Bounds, vp types.Viewport) {
	if err := b.Validate(); err != nil {
		panic("mandel: render: " + err.Error())
	}
	if want := r.FrameSize(b); len(buf) != want {
		panic(fmt.Sprintf("mandel: render buffer has %d bytes, %s %s pixels need %d",
			len(buf), b, r.format, want))
	}

	start := time.Now()
	bands := Partition(b, vp, r.workers)
	stride := b.W * r.format.BytesPerPixel()

	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, band := range bands {
		band := band
		lo, hi := band.Top*stride, (band.Top+band.Rows)*stride
		sub := buf[lo:hi:hi]
		g.Go(func() error {
			r.RenderBand(sub, b, vp, band)
			return nil
		})
	}
	_ = g.Wait() // bands never return errors; a bad band panics instead

	Logger().Debug("render pass",
		"bounds", b.String(),
		"viewport", vp.String(),
		"bands", len(bands),
		"rows_per_band", bands[0].Rows,
		"elapsed", time.Since(start))
}

// RenderPass renders vp into buf with the given number of workers and the
// default iteration limit. The pixel format is inferred from the buffer:
// one byte per pixel is gray, four is XRGB. Any other length panics.
func RenderPass(buf []byte, b types.Bounds, upperLeft, lowerRight complex128, workers int) {
	if err := b.Validate(); err != nil {
		panic("mandel: render pass: " + err.Error())
	}

	var format types.PixelFormat
	switch len(buf) {
	case b.Pixels():
		format = types.Gray
	case b.Pixels() * 4:
		format = types.XRGB
	default:
		panic(fmt.Sprintf("mandel: render pass buffer has %d bytes, not 1 or 4 bytes per pixel for %s",
			len(buf), b))
	}

	vp := types.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight}
	New(WithWorkers(workers), WithFormat(format)).Render(buf, b, vp)
}
