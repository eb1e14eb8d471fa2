package mandel

import "github.com/joshvictor1024/mandelbands/pkg/types"

// PixelToPoint maps pixel p of an image of size b onto the plane region vp.
//
// Pixel rows grow downward while the imaginary axis grows upward, so row 0
// maps to imag(vp.UpperLeft). The pixel (b.W, b.H), one past the last real
// pixel, maps to vp.LowerRight.
func PixelToPoint(b types.Bounds, p types.Pointi, vp types.Viewport) complex128 {
	w := real(vp.LowerRight) - real(vp.UpperLeft)
	h := imag(vp.UpperLeft) - imag(vp.LowerRight)
	return complex(
		real(vp.UpperLeft)+float64(p.X)*w/float64(b.W),
		imag(vp.UpperLeft)-float64(p.Y)*h/float64(b.H),
	)
}
