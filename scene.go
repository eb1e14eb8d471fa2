package main

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/joshvictor1024/mandelbands/pkg/view"
)

// keyCommand maps a key to a viewport command.
func keyCommand(k sdl.Keycode) view.Command {
	switch k {
	case sdl.K_w:
		return view.PanUp
	case sdl.K_s:
		return view.PanDown
	case sdl.K_a:
		return view.PanLeft
	case sdl.K_d:
		return view.PanRight
	case sdl.K_z:
		return view.ZoomIn
	case sdl.K_x:
		return view.ZoomOut
	case sdl.K_SPACE:
		return view.Reset
	case sdl.K_ESCAPE:
		return view.Quit
	}
	return view.None
}

type scene struct {
	canvas *canvas
	ctrl   *view.Controller
	log    *slog.Logger
}

func newScene(c *canvas, ctrl *view.Controller, logger *slog.Logger) *scene {
	return &scene{canvas: c, ctrl: ctrl, log: logger}
}

// handle applies cmd and redraws if the viewport moved.
func (s *scene) handle(cmd view.Command) (quit bool, err error) {
	if cmd == view.Quit {
		return true, nil
	}
	if !s.ctrl.Apply(cmd) {
		return false, nil
	}
	s.log.Debug("command", "cmd", cmd.String())
	return false, s.draw()
}

// draw renders the current viewport and shows it.
func (s *scene) draw() error {
	vp := s.ctrl.Viewport()
	s.log.Info("rendering", "viewport", vp.String())
	if err := s.canvas.render(vp); err != nil {
		return err
	}
	return s.canvas.present()
}

// present shows the last rendered frame again.
func (s *scene) present() error {
	return s.canvas.present()
}
