//go:build headless

// display_headless.go - Windowless display for CI and scripted runs

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"errors"
	"sync/atomic"
	"time"
)

const (
	headlessWidth     = 1920
	headlessHeight    = 1080
	headlessFrameTime = time.Second / 60
)

// HeadlessDisplay runs the frame loop at 60 frames per second against a
// surface that discards everything drawn.
type HeadlessDisplay struct {
	started    bool
	config     Config
	width      int
	height     int
	frameCount uint64
}

func newDisplay() display {
	return &HeadlessDisplay{}
}

func (h *HeadlessDisplay) open(cfg Config) error {
	h.config = cfg
	h.width, h.height = cfg.Width, cfg.Height
	if h.width <= 0 {
		h.width = headlessWidth
	}
	if h.height <= 0 {
		h.height = headlessHeight
	}
	h.started = true
	return nil
}

func (h *HeadlessDisplay) run(fh frameHandler) error {
	surface := nullSurface{width: h.width, height: h.height}
	ticker := time.NewTicker(headlessFrameTime)
	defer ticker.Stop()
	for {
		if err := fh.beginFrame(); err != nil {
			if errors.Is(err, errStopRequested) {
				return nil
			}
			return err
		}
		fh.renderFrame(surface)
		n := atomic.AddUint64(&h.frameCount, 1)
		if h.config.MaxFrames > 0 && n >= uint64(h.config.MaxFrames) {
			return nil
		}
		<-ticker.C
	}
}

func (h *HeadlessDisplay) close() error {
	h.started = false
	return nil
}

func (h *HeadlessDisplay) size() (int, int) {
	return h.width, h.height
}

// origin is the configured position. There is no scaling without a window.
func (h *HeadlessDisplay) origin() Point {
	return Point{X: h.config.X, Y: h.config.Y}
}

func (h *HeadlessDisplay) FrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

type nullSurface struct {
	width  int
	height int
}

func (s nullSurface) Size() (int, int)                      { return s.width, s.height }
func (nullSurface) StrokeLine(_, _ Vec2, _ float32, _ RGBA) {}
func (nullSurface) StrokePolygon([]Vec2, float32, RGBA)     {}
func (nullSurface) FillPolygon([]Vec2, RGBA)                {}
func (nullSurface) FillDot(Vec2, float32, RGBA)             {}
func (nullSurface) DrawGlyphs(string, Point, RGBA)          {}
