package glasspane

import (
	"errors"
	"fmt"
	"time"
)

type fakeWindow struct {
	title string
	rect  Rect
	alive bool
}

// fakeWindowSystem is an in-memory window manager.
type fakeWindowSystem struct {
	windows    map[Handle]*fakeWindow
	foreground Handle
	nextHandle Handle
	presses    map[Key]int
	findCalls  int
	rectErr    error
	closed     bool
}

func newFakeWindowSystem() *fakeWindowSystem {
	return &fakeWindowSystem{
		windows:    make(map[Handle]*fakeWindow),
		presses:    make(map[Key]int),
		nextHandle: 0x100,
	}
}

func (f *fakeWindowSystem) open(title string, r Rect) Handle {
	h := f.nextHandle
	f.nextHandle++
	f.windows[h] = &fakeWindow{title: title, rect: r, alive: true}
	return h
}

func (f *fakeWindowSystem) destroy(h Handle) {
	if w, ok := f.windows[h]; ok {
		w.alive = false
	}
}

func (f *fakeWindowSystem) FindWindow(title string) (Handle, error) {
	f.findCalls++
	for h := Handle(0x100); h < f.nextHandle; h++ {
		w := f.windows[h]
		if w != nil && w.alive && w.title == title {
			return h, nil
		}
	}
	return 0, nil
}

func (f *fakeWindowSystem) IsWindow(h Handle) bool {
	w, ok := f.windows[h]
	return ok && w.alive
}

func (f *fakeWindowSystem) WindowRect(h Handle) (Rect, error) {
	if f.rectErr != nil {
		return Rect{}, f.rectErr
	}
	w, ok := f.windows[h]
	if !ok || !w.alive {
		return Rect{}, fmt.Errorf("no window 0x%x", uintptr(h))
	}
	return w.rect, nil
}

func (f *fakeWindowSystem) ForegroundWindow() Handle {
	return f.foreground
}

// KeyPressed consumes one queued press, like the low bit of GetAsyncKeyState.
func (f *fakeWindowSystem) KeyPressed(k Key) bool {
	if f.presses[k] > 0 {
		f.presses[k] = 0
		return true
	}
	return false
}

func (f *fakeWindowSystem) Close() error {
	f.closed = true
	return nil
}

// fakeDisplay drives the frame loop synchronously and logs every step.
type fakeDisplay struct {
	opened    bool
	closed    bool
	openErr   error
	loopErr   error
	maxFrames int
	width     int
	height    int
	x, y      int     // window position in device-independent pixels
	scale     float64 // device scale factor; zero means 1
	events    []string
	surface   *recordingSurface
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{maxFrames: 1000, width: 800, height: 600, surface: &recordingSurface{w: 800, h: 600}}
}

func (d *fakeDisplay) open(cfg Config) error {
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	d.x, d.y = cfg.X, cfg.Y
	return nil
}

func (d *fakeDisplay) run(h frameHandler) error {
	for frame := 0; frame < d.maxFrames; frame++ {
		d.events = append(d.events, "poll")
		if err := h.beginFrame(); err != nil {
			if errors.Is(err, errStopRequested) {
				d.events = append(d.events, "exit")
				return nil
			}
			return err
		}
		h.renderFrame(d.surface)
		d.events = append(d.events, "present")
		if d.loopErr != nil {
			return d.loopErr
		}
	}
	return errors.New("frame limit reached")
}

func (d *fakeDisplay) close() error {
	d.closed = true
	d.events = append(d.events, "close")
	return nil
}

func (d *fakeDisplay) size() (int, int) {
	return d.width, d.height
}

func (d *fakeDisplay) origin() Point {
	return Point{X: physicalPixels(d.x, d.scale), Y: physicalPixels(d.y, d.scale)}
}

type drawOp struct {
	kind  string
	pts   []Vec2
	width float32
	color RGBA
	text  string
	at    Point
}

type recordingSurface struct {
	w, h int
	ops  []drawOp
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) StrokeLine(from, to Vec2, width float32, c RGBA) {
	s.ops = append(s.ops, drawOp{kind: "line", pts: []Vec2{from, to}, width: width, color: c})
}

func (s *recordingSurface) StrokePolygon(pts []Vec2, width float32, c RGBA) {
	s.ops = append(s.ops, drawOp{kind: "outline", pts: append([]Vec2(nil), pts...), width: width, color: c})
}

func (s *recordingSurface) FillPolygon(pts []Vec2, c RGBA) {
	s.ops = append(s.ops, drawOp{kind: "fill", pts: append([]Vec2(nil), pts...), color: c})
}

func (s *recordingSurface) FillDot(at Vec2, size float32, c RGBA) {
	s.ops = append(s.ops, drawOp{kind: "dot", pts: []Vec2{at}, width: size, color: c})
}

func (s *recordingSurface) DrawGlyphs(str string, origin Point, c RGBA) {
	s.ops = append(s.ops, drawOp{kind: "text", text: str, at: origin, color: c})
}

// fakeClock advances by step on every reading.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

// newTestOverlay wires an overlay to fakes with a target window already open.
func newTestOverlay(title string) (*Overlay, *fakeWindowSystem, *fakeDisplay) {
	ws := newFakeWindowSystem()
	disp := newFakeDisplay()
	o := New(title, Config{})
	o.SetWindowSystem(ws)
	o.disp = disp
	o.sleep = func(time.Duration) {}
	return o, ws, disp
}
