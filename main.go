// Command mandelbands is an interactive Mandelbrot explorer.
//
// Keys: W/A/S/D pan, Z zooms in, X zooms out, Space resets the view and
// Escape quits. Every change renders one full frame.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/joshvictor1024/mandelbands/pkg/mandel"
	"github.com/joshvictor1024/mandelbands/pkg/types"
	"github.com/joshvictor1024/mandelbands/pkg/view"
)

func sdlInit(windowTitle string, b types.Bounds) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(b.W), int32(b.H), sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, err
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

func main() {
	width := flag.Int("width", 1000, "window width in pixels")
	height := flag.Int("height", 1000, "window height in pixels")
	workers := flag.Int("workers", mandel.DefaultWorkers, "number of bands rendered in parallel (0 = GOMAXPROCS)")
	limit := flag.Int("limit", mandel.DefaultLimit, "iteration limit of the escape-time test")
	verbose := flag.Bool("v", false, "log render details")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	mandel.SetLogger(logger)

	b := types.Bounds{W: *width, H: *height}
	if err := b.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if *limit < 1 {
		fmt.Fprintf(os.Stderr, "iteration limit must be positive, got %d\n", *limit)
		flag.Usage()
		os.Exit(2)
	}

	r := mandel.New(mandel.WithWorkers(*workers), mandel.WithLimit(*limit), mandel.WithFormat(types.XRGB))
	if err := run(b, r, logger); err != nil {
		logger.Error("explorer stopped", "err", err)
		os.Exit(1)
	}
}

// run owns the window and the event loop. SDL events must be handled on
// the thread that initialized video, so everything here stays on one
// goroutine; only render passes fan out.
func run(b types.Bounds, r *mandel.Renderer, logger *slog.Logger) error {
	window, renderer, err := sdlInit("Mandelbrot Explorer", b)
	if err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdlClose(window, renderer)

	c, err := newCanvas(renderer, b, r)
	if err != nil {
		return err
	}
	defer c.close()

	s := newScene(c, view.NewController(view.Default), logger)
	if err := s.draw(); err != nil {
		return err
	}

	for {
		// WaitEvent must be on the same thread that did INIT_VIDEO
		e := sdl.WaitEvent()

		// WaitEvent returns nil on some error
		if e == nil {
			if err := sdl.GetError(); err != nil {
				return fmt.Errorf("wait event: %w", err)
			}
			return errors.New("wait event failed")
		}

		switch t := e.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.WindowEvent:
			if t.Event == sdl.WINDOWEVENT_EXPOSED {
				if err := s.present(); err != nil {
					return err
				}
			}
		case *sdl.KeyboardEvent:
			if t.Type != sdl.KEYDOWN || t.Repeat != 0 {
				break
			}
			quit, err := s.handle(keyCommand(t.Keysym.Sym))
			if err != nil || quit {
				return err
			}
		}
	}
}
