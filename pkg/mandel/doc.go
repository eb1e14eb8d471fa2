// Package mandel renders the Mandelbrot set into caller-owned pixel buffers.
//
// A render pass splits the image into horizontal bands of equal height
// (the last band takes the remainder) and renders every band on its own
// goroutine. Bands write disjoint row ranges of the buffer, so the only
// synchronization is the join at the end of the pass. The buffer is valid
// once [Renderer.Render] or [RenderPass] returns.
//
// Points are mapped with [PixelToPoint] and tested with [EscapeTime].
// A point that does not escape is drawn black; a point escaping at
// iteration n is drawn with intensity 255-n (see [Intensity]).
//
// Size mismatches between a buffer and its bounds are programming errors
// and panic.
package mandel
