package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBounds   = errors.New("invalid bounds")
	ErrInvalidViewport = errors.New("invalid viewport")
)

// Pointi is a pixel position, X to the right and Y down from the top left.
type Pointi struct {
	X, Y int
}

// Bounds is the pixel size of an image.
type Bounds struct {
	W, H int
}

func (b Bounds) Validate() error {
	if b.W <= 0 || b.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.W, b.H)
	}
	return nil
}

func (b Bounds) Pixels() int {
	return b.W * b.H
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.W, b.H)
}

// Viewport is the rectangle of the complex plane shown by an image.
// The real axis grows to the right and the imaginary axis grows up,
// so UpperLeft has the smaller real part and the larger imaginary part.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

func (v Viewport) Validate() error {
	if !(real(v.UpperLeft) < real(v.LowerRight)) || !(imag(v.UpperLeft) > imag(v.LowerRight)) {
		return fmt.Errorf("%w: %s", ErrInvalidViewport, v)
	}
	return nil
}

// Width is the span of the viewport along the real axis.
func (v Viewport) Width() float64 {
	return real(v.LowerRight) - real(v.UpperLeft)
}

// Height is the span of the viewport along the imaginary axis.
func (v Viewport) Height() float64 {
	return imag(v.UpperLeft) - imag(v.LowerRight)
}

func (v Viewport) Center() complex128 {
	return complex(
		(real(v.UpperLeft)+real(v.LowerRight))/2,
		(imag(v.UpperLeft)+imag(v.LowerRight))/2,
	)
}

func (v Viewport) String() string {
	return fmt.Sprintf("%g,%g %g,%g",
		real(v.UpperLeft), imag(v.UpperLeft), real(v.LowerRight), imag(v.LowerRight))
}

// PixelFormat is the byte layout of one pixel in a frame buffer.
type PixelFormat int

const (
	// Gray stores one intensity byte per pixel.
	Gray PixelFormat = iota
	// XRGB stores four bytes per pixel: an unused leading byte that is
	// always 0, then the intensity replicated three times.
	XRGB
)

func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case Gray:
		return 1
	case XRGB:
		return 4
	}
	panic(fmt.Sprintf("types: unknown pixel format %d", int(f)))
}

func (f PixelFormat) String() string {
	switch f {
	case Gray:
		return "gray"
	case XRGB:
		return "xrgb"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}
