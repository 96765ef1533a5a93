package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/intuitionamiga/glasspane"
)

//go:embed scripts/crosshair.lua
var defaultScript string

// controlTicker handles the keys every mode shares and then runs the mode.
type controlTicker struct {
	mode     glasspane.Ticker
	keys     controls
	copier   rectCopier
	copyFail bool
}

func (c *controlTicker) Tick(o *glasspane.Overlay) error {
	if o.KeyPressed(c.keys.quit) {
		o.Stop()
	}
	if o.KeyPressed(c.keys.copy) && o.Target().Exists() {
		r := o.Target().ScreenRect()
		if err := c.copier.copyRect(r); err != nil {
			// Reported once; the overlay keeps running without a clipboard.
			if !c.copyFail {
				fmt.Fprintf(os.Stderr, "glasspane-demo: %v\n", err)
				c.copyFail = true
			}
		} else {
			fmt.Printf("Copied target rectangle %s\n", formatRect(r))
		}
	}
	return c.mode.Tick(o)
}

// fovTicker marks the target with its diagonals, outline and a resizable
// field-of-view circle, plus the frame timing in the top-left corner.
type fovTicker struct {
	radius int
	color  glasspane.RGBA
	grow   glasspane.Key
	shrink glasspane.Key
}

func (f *fovTicker) Tick(o *glasspane.Overlay) error {
	if o.KeyPressed(f.grow) {
		f.radius++
	}
	if o.KeyPressed(f.shrink) && f.radius > 1 {
		f.radius--
	}

	t := o.Target()
	if !t.IsValid() {
		return nil
	}
	r := t.Rect()
	o.DrawLine(glasspane.Point{X: r.Left, Y: r.Top}, glasspane.Point{X: r.Right, Y: r.Bottom}, glasspane.White)
	o.DrawLine(glasspane.Point{X: r.Right, Y: r.Top}, glasspane.Point{X: r.Left, Y: r.Bottom}, glasspane.White)
	o.DrawEmptyCircle(r.Center(), float64(f.radius), f.color)
	o.DrawEmptyRect(r, glasspane.White)
	o.DrawTextAnchored(fmt.Sprintf("%d fps", o.FPS()), glasspane.Point{}, glasspane.AnchorUpperLeft, glasspane.White)
	o.DrawTextAnchored(fmt.Sprintf("%d ms", o.MS()), glasspane.Point{Y: 50}, glasspane.AnchorUpperLeft, glasspane.White)
	return nil
}

// crosshairTicker draws a small cross on the centre of the target.
type crosshairTicker struct {
	arm   int
	color glasspane.RGBA
}

func (c *crosshairTicker) Tick(o *glasspane.Overlay) error {
	t := o.Target()
	if !t.Exists() {
		return nil
	}
	ctr := t.Rect().Center()
	o.DrawLine(glasspane.Point{X: ctr.X - c.arm, Y: ctr.Y}, glasspane.Point{X: ctr.X + c.arm, Y: ctr.Y}, c.color)
	o.DrawLine(glasspane.Point{X: ctr.X, Y: ctr.Y - c.arm}, glasspane.Point{X: ctr.X, Y: ctr.Y + c.arm}, c.color)
	return nil
}

type testPatternTicker struct{}

func (testPatternTicker) Tick(o *glasspane.Overlay) error {
	o.DrawTest(o.Target().Rect())
	return nil
}

// newModeTicker builds the ticker for cfg.Mode. The returned cleanup must be
// called once the overlay has stopped.
func newModeTicker(cfg demoConfig, copier rectCopier) (glasspane.Ticker, func(), error) {
	keys, err := cfg.Keys.resolve()
	if err != nil {
		return nil, nil, err
	}
	color, ok := glasspane.ColorByName(cfg.Color)
	if !ok {
		return nil, nil, fmt.Errorf("unknown colour %q", cfg.Color)
	}

	cleanup := func() {}
	var mode glasspane.Ticker
	switch cfg.Mode {
	case "fov":
		mode = &fovTicker{radius: cfg.FOVRadius, color: color, grow: keys.grow, shrink: keys.shrink}
	case "crosshair":
		mode = &crosshairTicker{arm: 10, color: glasspane.White}
	case "test":
		mode = testPatternTicker{}
	case "script":
		var st *glasspane.ScriptTicker
		if cfg.Script != "" {
			st, err = glasspane.LoadScriptTicker(cfg.Script)
		} else {
			st, err = glasspane.NewScriptTicker("crosshair.lua", defaultScript)
		}
		if err != nil {
			return nil, nil, err
		}
		mode = st
		cleanup = st.Close
	default:
		return nil, nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return &controlTicker{mode: mode, keys: keys, copier: copier}, cleanup, nil
}
