package glasspane

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOverlay_LifecycleStates(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{0, 0, 640, 480})

	if o.State() != StateUninitialized {
		t.Fatalf("expected uninitialized, got %v", o.State())
	}
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.State() != StateCreated || !disp.opened {
		t.Fatalf("expected created state with open display, got %v opened=%v", o.State(), disp.opened)
	}

	var seen State
	o.OnTick(func(o *Overlay) error {
		seen = o.State()
		o.Stop()
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if seen != StateRunning {
		t.Fatalf("expected running state inside tick, got %v", seen)
	}
	if o.State() != StateStopped {
		t.Fatalf("expected stopped state, got %v", o.State())
	}
	if !disp.closed || !ws.closed {
		t.Fatalf("expected resources released, display=%v windows=%v", disp.closed, ws.closed)
	}
}

func TestOverlay_StopFinishesCurrentFrame(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{0, 0, 640, 480})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	ticks := 0
	o.OnTick(func(o *Overlay) error {
		ticks++
		if ticks == 3 {
			o.Stop()
			o.DrawLine(Point{0, 0}, Point{1, 1}, White)
		}
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", ticks)
	}
	got := strings.Join(disp.events, ",")
	want := "poll,present,poll,present,poll,present,poll,exit,close"
	if got != want {
		t.Fatalf("expected events %s, got %s", want, got)
	}
	if len(disp.surface.ops) != 1 {
		t.Fatalf("expected the stopping frame to be drawn, got %d ops", len(disp.surface.ops))
	}
}

func TestOverlay_RunWaitsForTarget(t *testing.T) {
	o, ws, _ := newTestOverlay("Late")
	sleeps := 0
	o.sleep = func(d time.Duration) {
		if d != defaultPollInterval {
			t.Fatalf("expected poll interval %v, got %v", defaultPollInterval, d)
		}
		sleeps++
		if sleeps == 3 {
			ws.open("Late", Rect{0, 0, 10, 10})
		}
	}
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var rect Rect
	o.OnTick(func(o *Overlay) error {
		rect = o.Target().Rect()
		o.Stop()
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if sleeps != 3 {
		t.Fatalf("expected 3 polls before the target appeared, got %d", sleeps)
	}
	if rect != (Rect{0, 0, 10, 10}) {
		t.Fatalf("expected target rect in first frame, got %v", rect)
	}
}

func TestOverlay_TargetRefreshedEachFrame(t *testing.T) {
	o, ws, _ := newTestOverlay("Terminal")
	h := ws.open("Terminal", Rect{0, 0, 100, 100})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var valid []bool
	o.OnTick(func(o *Overlay) error {
		valid = append(valid, o.Target().IsValid())
		// focus changes between frames
		ws.foreground = h
		if len(valid) == 2 {
			o.Stop()
		}
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(valid) != 2 || valid[0] || !valid[1] {
		t.Fatalf("expected [false true], got %v", valid)
	}
}

func TestOverlay_FrameTiming(t *testing.T) {
	o, ws, _ := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{0, 0, 100, 100})
	// every clock reading is 20ms after the previous one
	clock := &fakeClock{t: time.Unix(0, 0), step: 20 * time.Millisecond}
	o.now = clock.now
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	frame := 0
	var before, fps, ms int
	o.OnTick(func(o *Overlay) error {
		frame++
		switch frame {
		case 49:
			before = o.FPS()
		case 50:
			fps, ms = o.FPS(), o.MS()
			o.Stop()
		}
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if before != 0 {
		t.Fatalf("expected no figures before the first second, got %d fps", before)
	}
	if fps != 50 || ms != 20 {
		t.Fatalf("expected 50 fps / 20 ms, got %d / %d", fps, ms)
	}
}

func TestOverlay_RunWithoutTicker(t *testing.T) {
	o, ws, _ := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var hooked error
	o.SetErrorHandler(func(_ *Overlay, err error) { hooked = err })
	err := o.Run()
	if !errors.Is(err, ErrNoTicker) {
		t.Fatalf("expected ErrNoTicker, got %v", err)
	}
	if !errors.Is(hooked, ErrNoTicker) {
		t.Fatalf("expected error handler to receive ErrNoTicker, got %v", hooked)
	}
}

func TestOverlay_RunBeforeCreate(t *testing.T) {
	o, _, _ := newTestOverlay("Terminal")
	o.OnTick(func(*Overlay) error { return nil })
	err := o.Run()
	var oe *OverlayError
	if !errors.As(err, &oe) || oe.Operation != "run" {
		t.Fatalf("expected run OverlayError, got %v", err)
	}
}

func TestOverlay_CreateTwice(t *testing.T) {
	o, _, _ := newTestOverlay("Terminal")
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := o.Create(); err == nil {
		t.Fatal("expected second Create to fail")
	}
}

func TestOverlay_CreateDisplayFailure(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	disp.openErr = errors.New("no GL context")
	calls := 0
	o.SetErrorHandler(func(*Overlay, error) { calls++ })
	err := o.Create()
	var oe *OverlayError
	if !errors.As(err, &oe) || oe.Operation != "create" {
		t.Fatalf("expected create OverlayError, got %v", err)
	}
	if !strings.Contains(err.Error(), "no GL context") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if calls != 1 {
		t.Fatalf("expected error handler called once, got %d", calls)
	}
	if o.State() != StateUninitialized {
		t.Fatalf("expected state unchanged, got %v", o.State())
	}
	if !ws.closed {
		t.Fatal("expected window system closed after the display failed to open")
	}
	if o.Target() != nil {
		t.Fatal("expected no target after a failed Create")
	}
}

func TestOverlay_TickErrorStopsLoop(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	boom := errors.New("boom")
	var hooked []error
	o.SetErrorHandler(func(_ *Overlay, err error) { hooked = append(hooked, err) })
	o.OnTick(func(*Overlay) error { return boom })

	if err := o.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected boom from Run, got %v", err)
	}
	if len(hooked) != 1 || hooked[0] != boom {
		t.Fatalf("expected handler to see boom once, got %v", hooked)
	}
	if got := strings.Join(disp.events, ","); got != "poll,present,poll,exit,close" {
		t.Fatalf("unexpected events %s", got)
	}
}

func TestOverlay_DisplayFailureReported(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{})
	disp.loopErr = errors.New("device lost")
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	o.OnTick(func(*Overlay) error { return nil })
	err := o.Run()
	if err == nil || !strings.Contains(err.Error(), "device lost") {
		t.Fatalf("expected device lost, got %v", err)
	}
	if o.State() != StateStopped || !disp.closed {
		t.Fatal("expected resources released after a display failure")
	}
}

func TestOverlay_KeyPressedDelegates(t *testing.T) {
	o, ws, _ := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	ws.presses[KeyEscape] = 1
	if !o.KeyPressed(KeyEscape) {
		t.Fatal("expected escape pressed")
	}
	if o.KeyPressed(KeyEscape) {
		t.Fatal("expected second query to report no new press")
	}
}

func TestOverlay_DrawOutsideFrameIsNoop(t *testing.T) {
	o, _, disp := newTestOverlay("Terminal")
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	o.DrawLine(Point{0, 0}, Point{5, 5}, White)
	o.DrawText("hi", Point{0, 0}, White)
	if len(disp.surface.ops) != 0 {
		t.Fatalf("expected no drawing outside a frame, got %d ops", len(disp.surface.ops))
	}
}

func TestOverlay_ConfigDefaults(t *testing.T) {
	o := New("x", Config{})
	cfg := o.Config()
	if cfg.Title != defaultOverlayTitle || cfg.TargetPollInterval != defaultPollInterval {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if w, h := o.Size(); w != 0 || h != 0 {
		t.Fatalf("expected zero size before Create, got %dx%d", w, h)
	}
}

func TestState_String(t *testing.T) {
	if StateRunning.String() != "running" || State(9).String() != "state(9)" {
		t.Fatal("unexpected state names")
	}
}

// targetOutline draws the target's outline for one frame and returns the
// outline and the target's screen rectangle as seen inside the tick.
func targetOutline(t *testing.T, cfg Config, scale float64, screen Rect) ([]Vec2, Rect) {
	t.Helper()
	ws := newFakeWindowSystem()
	ws.open("Terminal", screen)
	disp := newFakeDisplay()
	disp.scale = scale
	o := New("Terminal", cfg)
	o.SetWindowSystem(ws)
	o.disp = disp
	o.sleep = func(time.Duration) {}
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var onScreen Rect
	o.OnTick(func(o *Overlay) error {
		onScreen = o.Target().ScreenRect()
		o.DrawEmptyRect(o.Target().Rect(), Green)
		o.Stop()
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(disp.surface.ops) != 1 {
		t.Fatalf("expected one outline, got %d ops", len(disp.surface.ops))
	}
	return disp.surface.ops[0].pts, onScreen
}

func TestOverlay_TargetRectRelativeToOverlayOrigin(t *testing.T) {
	pts, onScreen := targetOutline(t, Config{X: 100, Y: 50}, 1, Rect{200, 150, 400, 350})
	if pts[0] != (Vec2{100, 100}) || pts[2] != (Vec2{300, 300}) {
		t.Fatalf("expected outline from (100,100) to (300,300), got %v", pts)
	}
	if onScreen != (Rect{200, 150, 400, 350}) {
		t.Fatalf("expected unchanged screen rect, got %v", onScreen)
	}
}

func TestOverlay_TargetRectScaledOrigin(t *testing.T) {
	// At 150% the window at (100,50) device-independent sits at (150,75)
	// on screen.
	pts, _ := targetOutline(t, Config{X: 100, Y: 50}, 1.5, Rect{300, 275, 900, 675})
	if pts[0] != (Vec2{150, 200}) || pts[2] != (Vec2{750, 600}) {
		t.Fatalf("expected outline from (150,200) to (750,600), got %v", pts)
	}
}

func TestOverlay_TargetFollowsMovedOverlay(t *testing.T) {
	o, ws, disp := newTestOverlay("Terminal")
	ws.open("Terminal", Rect{500, 500, 600, 600})
	if err := o.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var rects []Rect
	o.OnTick(func(o *Overlay) error {
		rects = append(rects, o.Target().Rect())
		disp.x, disp.y = 400, 300
		if len(rects) == 2 {
			o.Stop()
		}
		return nil
	})
	if err := o.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if rects[0] != (Rect{500, 500, 600, 600}) || rects[1] != (Rect{100, 200, 200, 300}) {
		t.Fatalf("expected the rect to follow the overlay origin, got %v", rects)
	}
}

func TestPhysicalPixels(t *testing.T) {
	cases := []struct {
		v     int
		scale float64
		want  int
	}{
		{100, 1, 100},
		{100, 0, 100},
		{100, -2, 100},
		{100, 1.5, 150},
		{-40, 2, -80},
		{3, 1.25, 4},
	}
	for _, tc := range cases {
		if got := physicalPixels(tc.v, tc.scale); got != tc.want {
			t.Fatalf("physicalPixels(%d, %v): expected %d, got %d", tc.v, tc.scale, tc.want, got)
		}
	}
}
