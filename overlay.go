// overlay.go - Overlay session: lifecycle, frame loop and error reporting

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// State is the lifecycle position of an Overlay.
type State int

const (
	StateUninitialized State = iota
	StateCreated
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Ticker is called once per frame. It may read the target, draw, query keys
// and call Stop. A returned error ends the run and is passed to the error
// handler.
type Ticker interface {
	Tick(o *Overlay) error
}

// TickFunc adapts a function to Ticker.
type TickFunc func(o *Overlay) error

func (f TickFunc) Tick(o *Overlay) error {
	return f(o)
}

// ErrorHandler receives every failure reported by the overlay.
type ErrorHandler func(o *Overlay, err error)

// ErrNoTicker is returned by Run when no per-frame callback was registered.
var ErrNoTicker = errors.New("no tick callback set")

// Overlay is a transparent, click-through, always-on-top window that follows a
// target window and redraws a user callback every frame.
//
// All methods must be called from the goroutine that calls Run.
type Overlay struct {
	cfg         Config
	targetTitle string
	state       State

	windows WindowSystem
	target  *Target
	disp    display

	ticker  Ticker
	onError ErrorHandler

	timer   *FrameTimer
	surface Surface
	stop    bool
	runErr  error

	now   func() time.Time
	sleep func(time.Duration)
}

// New prepares an overlay for the window titled targetTitle. Nothing is
// allocated until Create.
func New(targetTitle string, cfg Config) *Overlay {
	return &Overlay{
		cfg:         cfg.withDefaults(),
		targetTitle: targetTitle,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// SetWindowSystem replaces the platform window system. It must be called
// before Create. The overlay closes ws when Run returns or Create fails.
func (o *Overlay) SetWindowSystem(ws WindowSystem) {
	o.windows = ws
}

func (o *Overlay) SetTicker(t Ticker) {
	o.ticker = t
}

// OnTick registers fn as the per-frame callback.
func (o *Overlay) OnTick(fn func(o *Overlay) error) {
	o.ticker = TickFunc(fn)
}

// SetErrorHandler registers h. Errors are still returned from Create and Run.
func (o *Overlay) SetErrorHandler(h ErrorHandler) {
	o.onError = h
}

func (o *Overlay) State() State {
	return o.state
}

// Target is nil until Create.
func (o *Overlay) Target() *Target {
	return o.target
}

func (o *Overlay) Config() Config {
	return o.cfg
}

// FPS is the frame rate measured over the last complete second.
func (o *Overlay) FPS() int {
	if o.timer == nil {
		return 0
	}
	return o.timer.FPS()
}

// MS is the average frame time in whole milliseconds over the last complete second.
func (o *Overlay) MS() int {
	if o.timer == nil {
		return 0
	}
	return o.timer.MS()
}

// Size returns the drawing surface size in physical pixels.
func (o *Overlay) Size() (width, height int) {
	if o.disp == nil {
		return 0, 0
	}
	return o.disp.size()
}

// KeyPressed reports whether k was pressed since the previous query for k.
// The state is global, so keys pressed in the target window are seen.
func (o *Overlay) KeyPressed(k Key) bool {
	if o.windows == nil {
		return false
	}
	return o.windows.KeyPressed(k)
}

// report hands err to the error handler, if any, and returns it.
func (o *Overlay) report(err error) error {
	if o.onError != nil {
		o.onError(o, err)
	}
	return err
}

// Create connects to the window system, resolves the target and opens the
// overlay window.
func (o *Overlay) Create() error {
	if o.state != StateUninitialized {
		return o.report(&OverlayError{
			Operation: "create",
			Details:   fmt.Sprintf("overlay is %s", o.state),
		})
	}
	if o.windows == nil {
		ws, err := NewWindowSystem()
		if err != nil {
			return o.report(&OverlayError{Operation: "create", Details: "window system unavailable", Err: err})
		}
		o.windows = ws
	}
	o.target = NewTarget(o.targetTitle, o.windows)
	o.target.Find()

	if o.disp == nil {
		o.disp = newDisplay()
	}
	if err := o.disp.open(o.cfg); err != nil {
		// Released as Run would; a later Create starts from scratch.
		o.windows.Close()
		o.windows = nil
		o.target = nil
		return o.report(&OverlayError{Operation: "create", Details: "cannot open overlay window", Err: err})
	}
	o.target.setOrigin(o.disp.origin())
	o.timer = NewFrameTimer(o.now())
	o.state = StateCreated
	return nil
}

// Stop asks the frame loop to end. The frame in progress is finished and
// presented first.
func (o *Overlay) Stop() {
	o.stop = true
}

// StopRequested reports whether Stop has been called.
func (o *Overlay) StopRequested() bool {
	return o.stop
}

// waitForTarget polls until the target window exists. There is no timeout.
func (o *Overlay) waitForTarget() {
	announced := false
	for {
		o.target.Update()
		if o.target.Exists() || o.stop {
			return
		}
		if !announced {
			fmt.Fprintf(os.Stderr, "glasspane: waiting for window %q\n", o.targetTitle)
			announced = true
		}
		o.sleep(o.cfg.TargetPollInterval)
	}
}

// Run waits for the target window, then runs the frame loop until Stop is
// called or the overlay window is closed. The window and the window system are
// released before Run returns.
func (o *Overlay) Run() error {
	if o.state != StateCreated {
		return o.report(&OverlayError{
			Operation: "run",
			Details:   fmt.Sprintf("overlay is %s", o.state),
		})
	}
	if o.ticker == nil {
		return o.report(&OverlayError{Operation: "run", Details: "cannot start frame loop", Err: ErrNoTicker})
	}

	o.waitForTarget()
	o.state = StateRunning
	o.timer.Reset(o.now())

	loopErr := o.disp.run(o)
	o.state = StateStopped

	if err := o.release(); err != nil && loopErr == nil {
		loopErr = err
	}
	if loopErr != nil {
		return o.report(&OverlayError{Operation: "run", Details: "frame loop aborted", Err: loopErr})
	}
	// Ticker errors were reported when they happened.
	return o.runErr
}

func (o *Overlay) release() error {
	var errs []error
	if err := o.disp.close(); err != nil {
		errs = append(errs, fmt.Errorf("close display: %w", err))
	}
	if err := o.windows.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close window system: %w", err))
	}
	return errors.Join(errs...)
}

func (o *Overlay) beginFrame() error {
	if o.stop {
		return errStopRequested
	}
	o.target.setOrigin(o.disp.origin())
	o.target.Update()
	return nil
}

func (o *Overlay) renderFrame(s Surface) {
	o.timer.Tick(o.now())

	o.surface = s
	err := o.ticker.Tick(o)
	o.surface = nil

	if err != nil && o.runErr == nil {
		o.runErr = o.report(err)
		o.stop = true
	}
}
