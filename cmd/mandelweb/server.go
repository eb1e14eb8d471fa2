package main

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	"github.com/zeromicro/go-zero/core/syncx"

	"github.com/joshvictor1024/mandelbands/pkg/imgfile"
	"github.com/joshvictor1024/mandelbands/pkg/mandel"
	"github.com/joshvictor1024/mandelbands/pkg/types"
	"github.com/joshvictor1024/mandelbands/pkg/view"
)

//go:embed static/index.html
var indexHTML []byte

// status describes the frame that follows it on the websocket.
type status struct {
	UpperLeft  [2]float64 `json:"upper_left"`
	LowerRight [2]float64 `json:"lower_right"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
}

func newStatus(vp types.Viewport, b types.Bounds) status {
	return status{
		UpperLeft:  [2]float64{real(vp.UpperLeft), imag(vp.UpperLeft)},
		LowerRight: [2]float64{real(vp.LowerRight), imag(vp.LowerRight)},
		Width:      b.W,
		Height:     b.H,
	}
}

type server struct {
	bounds types.Bounds
	mr     *mandel.Renderer
	frames syncx.SingleFlight
	log    *slog.Logger
}

func newServer(cfg Config, logger *slog.Logger) *server {
	return &server{
		bounds: cfg.bounds(),
		mr:     mandel.New(mandel.WithWorkers(cfg.Workers), mandel.WithLimit(cfg.Limit)),
		frames: syncx.NewSingleFlight(),
		log:    logger,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// frame renders vp and encodes it as PNG. Clients asking for the same
// viewport at the same time share one render pass.
func (s *server) frame(vp types.Viewport) ([]byte, error) {
	v, err := s.frames.Do(vp.String(), func() (any, error) {
		pixels := make([]byte, s.mr.FrameSize(s.bounds))
		s.mr.Render(pixels, s.bounds, vp)

		var buf bytes.Buffer
		if err := imgfile.Encode(&buf, imgfile.PNG, pixels, s.bounds); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Warn("websocket accept", "err", err)
		return
	}
	defer c.CloseNow()

	log := s.log.With("remote", r.RemoteAddr)
	log.Info("client connected")

	err = s.serve(r.Context(), c, log)
	switch {
	case err == nil:
		c.Close(websocket.StatusNormalClosure, "")
		log.Info("client quit")
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway,
		errors.Is(err, context.Canceled):
		log.Info("client disconnected")
	default:
		log.Warn("client dropped", "err", err)
	}
}

// serve runs one client's command loop. Each client owns its controller.
// A failed send ends the loop.
func (s *server) serve(ctx context.Context, c *websocket.Conn, log *slog.Logger) error {
	ctrl := view.NewController(view.Default)
	if err := s.send(ctx, c, ctrl.Viewport(), log); err != nil {
		return err
	}

	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		cmd, err := view.ParseCommand(string(msg))
		if err != nil {
			log.Debug("ignoring message", "err", err)
			continue
		}
		if cmd == view.Quit {
			return nil
		}
		if !ctrl.Apply(cmd) {
			continue
		}
		if err := s.send(ctx, c, ctrl.Viewport(), log); err != nil {
			return err
		}
	}
}

func (s *server) send(ctx context.Context, c *websocket.Conn, vp types.Viewport, log *slog.Logger) error {
	log.Info("rendering", "viewport", vp.String())
	png, err := s.frame(vp)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	meta, err := sonic.Marshal(newStatus(vp, s.bounds))
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	if err := c.Write(ctx, websocket.MessageText, meta); err != nil {
		return fmt.Errorf("send status: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageBinary, png); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}
