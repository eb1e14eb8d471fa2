package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/joshvictor1024/mandelbands/pkg/mandel"
	"github.com/joshvictor1024/mandelbands/pkg/types"
)

// canvas is the display surface: a streaming texture the size of the
// window and the frame buffer rendered into it.
//
// PIXELFORMAT_RGBX8888 is a packed 32-bit format, so on little-endian
// hosts each pixel is laid out in memory as X, B, G, R. The renderer's
// XRGB layout [0, v, v, v] matches it byte for byte with the unused byte
// first.
type canvas struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	bounds   types.Bounds
	mr       *mandel.Renderer
	frame    []byte
}

func newCanvas(r *sdl.Renderer, b types.Bounds, mr *mandel.Renderer) (*canvas, error) {
	if mr.Format() != types.XRGB {
		return nil, fmt.Errorf("canvas needs xrgb frames, renderer writes %s", mr.Format())
	}

	t, err := r.CreateTexture(
		sdl.PIXELFORMAT_RGBX8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(b.W),
		int32(b.H),
	)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &canvas{
		renderer: r,
		texture:  t,
		bounds:   b,
		mr:       mr,
		frame:    make([]byte, mr.FrameSize(b)),
	}, nil
}

func (c *canvas) close() {
	c.texture.Destroy()
}

// render runs one full pass into the frame buffer and uploads it.
func (c *canvas) render(vp types.Viewport) error {
	c.mr.Render(c.frame, c.bounds, vp)

	data, pitch, err := c.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	defer c.texture.Unlock()

	// rows of a locked texture may be padded past width*4
	stride := c.bounds.W * 4
	for y := 0; y < c.bounds.H; y++ {
		copy(data[y*pitch:y*pitch+stride], c.frame[y*stride:(y+1)*stride])
	}
	return nil
}

func (c *canvas) present() error {
	if err := c.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := c.renderer.Copy(c.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	c.renderer.Present()
	return nil
}
