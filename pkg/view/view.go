// Package view holds the interactive viewport state: panning, zooming and
// resetting the region of the complex plane being explored.
package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

const (
	// PanFraction is how far one pan step moves, as a share of the span.
	PanFraction = 0.05

	// ZoomFraction is how much one zoom-in step shrinks the span.
	ZoomFraction = 0.10
)

// Default is the viewport shown at startup and after Reset.
var Default = types.Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

var ErrUnknownCommand = errors.New("unknown command")

// Command is one discrete request from the user.
type Command int

const (
	None Command = iota
	PanUp
	PanDown
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
	Reset
	Quit
)

var commandNames = [...]string{
	None:     "none",
	PanUp:    "up",
	PanDown:  "down",
	PanLeft:  "left",
	PanRight: "right",
	ZoomIn:   "in",
	ZoomOut:  "out",
	Reset:    "reset",
	Quit:     "quit",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand returns the command with the given name, ignoring case and
// surrounding space.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range commandNames {
		if n == name && Command(c) != None {
			return Command(c), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Controller owns the current viewport. It is not safe for concurrent use;
// each display surface keeps its own.
type Controller struct {
	vp   types.Viewport
	pan  float64
	zoom float64
}

func NewController(vp types.Viewport) *Controller {
	return &Controller{vp: vp, pan: PanFraction, zoom: ZoomFraction}
}

// Viewport returns a copy of the current viewport.
func (c *Controller) Viewport() types.Viewport {
	return c.vp
}

// Apply performs cmd and reports whether the viewport changed, in which
// case the caller should render exactly one new frame.
func (c *Controller) Apply(cmd Command) bool {
	before := c.vp
	switch cmd {
	case PanUp:
		c.shift(complex(0, c.pan*c.vp.Height()))
	case PanDown:
		c.shift(complex(0, -c.pan*c.vp.Height()))
	case PanLeft:
		c.shift(complex(-c.pan*c.vp.Width(), 0))
	case PanRight:
		c.shift(complex(c.pan*c.vp.Width(), 0))
	case ZoomIn:
		c.scale(1 - c.zoom)
	case ZoomOut:
		c.scale(1 / (1 - c.zoom))
	case Reset:
		c.vp = Default
	default:
		return false
	}
	return c.vp != before
}

func (c *Controller) shift(d complex128) {
	c.vp.UpperLeft += d
	c.vp.LowerRight += d
}

// scale multiplies both spans by s, keeping the center fixed. Both corners
// are computed from the old viewport.
func (c *Controller) scale(s float64) {
	center := c.vp.Center()
	hw := c.vp.Width() / 2 * s
	hh := c.vp.Height() / 2 * s
	c.vp = types.Viewport{
		UpperLeft:  complex(real(center)-hw, imag(center)+hh),
		LowerRight: complex(real(center)+hw, imag(center)-hh),
	}
}
