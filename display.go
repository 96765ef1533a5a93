// display.go - Overlay window backends and their configuration

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// OverlayError provides detailed error context for overlay operations
type OverlayError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *OverlayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("overlay %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("overlay %s failed: %s", e.Operation, e.Details)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}

// Config describes the overlay window. Position and size are in the window
// system's device-independent pixels; on a scaled display the drawing surface
// is larger by the device scale factor.
type Config struct {
	Title  string // Window title of the overlay itself
	X      int    // Window position on screen
	Y      int
	Width  int // Zero means the width of the primary screen
	Height int // Zero means the height of the primary screen
	VSync  bool
	// Antialias smooths lines and polygon edges.
	Antialias bool
	// TargetPollInterval is the delay between lookups while waiting for the
	// target window to appear. Zero means one second.
	TargetPollInterval time.Duration
	// MaxFrames stops the headless display after this many frames. Zero
	// means unlimited. Ignored by windowed displays.
	MaxFrames int
}

const (
	defaultOverlayTitle = "glasspane"
	defaultPollInterval = time.Second
)

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = defaultOverlayTitle
	}
	if c.TargetPollInterval <= 0 {
		c.TargetPollInterval = defaultPollInterval
	}
	return c
}

// errStopRequested is returned by beginFrame once Stop has been called.
var errStopRequested = errors.New("stop requested")

// frameHandler is the per-frame half of the overlay that a display drives.
type frameHandler interface {
	// beginFrame runs after the display has polled window events. It
	// returns errStopRequested when the loop must end before drawing.
	beginFrame() error
	// renderFrame issues the frame's drawing against s. The display
	// presents and clears afterwards.
	renderFrame(s Surface)
}

// display owns the overlay window and its graphics context.
type display interface {
	open(cfg Config) error
	// run blocks driving h until beginFrame asks to stop or the window is
	// closed by the user.
	run(h frameHandler) error
	close() error
	// size is the drawing surface in physical pixels.
	size() (width, height int)
	// origin is the top-left corner of the overlay window in physical screen
	// pixels, the space WindowSystem.WindowRect reports in.
	origin() Point
}

// physicalPixels converts a device-independent length or position to
// physical pixels. A non-positive scale counts as 1.
func physicalPixels(v int, scale float64) int {
	if scale <= 0 {
		return v
	}
	return int(math.Round(float64(v) * scale))
}
