package mandel

import (
	"fmt"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

// Band is a run of whole image rows rendered as one unit of work.
type Band struct {
	// Top is the first row of the band in the full image.
	Top int

	// Rows is the number of rows in the band.
	Rows int

	// Viewport is the part of the full viewport covered by the band,
	// derived from the full image's mapping rather than renormalized.
	Viewport types.Viewport
}

// Partition splits an image of size b into bands of ceil(b.H/workers)
// rows. Every band but the last has the same height; the last takes what
// remains. Fewer than workers bands are returned when b.H is small.
// The bands cover [0, b.H) in order, without gaps or overlap.
func Partition(b types.Bounds, vp types.Viewport, workers int) []Band {
	if workers <= 0 {
		panic(fmt.Sprintf("mandel: partition into %d bands", workers))
	}
	if err := b.Validate(); err != nil {
		panic("mandel: partition: " + err.Error())
	}

	rows := (b.H + workers - 1) / workers
	bands := make([]Band, 0, (b.H+rows-1)/rows)
	for top := 0; top < b.H; top += rows {
		n := min(rows, b.H-top)
		bands = append(bands, Band{
			Top:  top,
			Rows: n,
			Viewport: types.Viewport{
				UpperLeft:  PixelToPoint(b, types.Pointi{X: 0, Y: top}, vp),
				LowerRight: PixelToPoint(b, types.Pointi{X: b.W, Y: top + n}, vp),
			},
		})
	}
	return bands
}

// RenderBand fills buf with the rows of band. b and vp describe the whole
// image; every pixel is mapped against them so that the output does not
// depend on how the image was partitioned.
//
// buf holds exactly the band: b.W*band.Rows pixels in the renderer's
// format, in row-major order. Any other length panics before anything is
// written.
func (r *Renderer) RenderBand(buf []byte, b types.Bounds, vp types.Viewport, band Band) {
	bpp := r.format.BytesPerPixel()
	if want := b.W * band.Rows * bpp; len(buf) != want {
		panic(fmt.Sprintf("mandel: band at row %d has %d bytes, %dx%d %s pixels need %d",
			band.Top, len(buf), b.W, band.Rows, r.format, want))
	}

	for row := 0; row < band.Rows; row++ {
		for col := 0; col < b.W; col++ {
			c := PixelToPoint(b, types.Pointi{X: col, Y: band.Top + row}, vp)
			n, ok := EscapeTime(c, r.limit)
			v := Intensity(n, ok, r.limit)

			i := (row*b.W + col) * bpp
			switch r.format {
			case types.Gray:
				buf[i] = v
			case types.XRGB:
				buf[i+0] = 0
				buf[i+1] = v
				buf[i+2] = v
				buf[i+3] = v
			}
		}
	}
}
