// target.go - Tracking of the external window the overlay draws over

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

// Target follows one externally owned window, identified by its exact title.
//
// The handle is resolved lazily. When the window goes away the handle is
// dropped and the title is looked up again on the next Update, so a restarted
// application is picked up without recreating the overlay.
//
// The window system reports bounds in screen pixels. Rect translates them into
// the overlay's drawing space using the origin the overlay sets each frame.
type Target struct {
	title   string
	windows WindowSystem
	handle  Handle
	rect    Rect
	origin  Point
	valid   bool
	lastErr error
}

func NewTarget(title string, windows WindowSystem) *Target {
	return &Target{title: title, windows: windows}
}

func (t *Target) Title() string {
	return t.title
}

func (t *Target) Handle() Handle {
	return t.handle
}

// Rect is the bounds of the window as of the last Update, relative to the
// top-left corner of the overlay. Pass it straight to the drawing methods.
func (t *Target) Rect() Rect {
	if t.handle == 0 {
		return Rect{}
	}
	return t.rect.Sub(t.origin)
}

// ScreenRect is the bounds of the window in screen pixels.
func (t *Target) ScreenRect() Rect {
	return t.rect
}

func (t *Target) setOrigin(p Point) {
	t.origin = p
}

// IsValid reports whether the window had focus at the last Update.
func (t *Target) IsValid() bool {
	return t.valid
}

// Exists reports whether the cached handle refers to a live window.
func (t *Target) Exists() bool {
	return t.handle != 0 && t.windows.IsWindow(t.handle)
}

// Err returns the last lookup or geometry error, if any.
func (t *Target) Err() error {
	return t.lastErr
}

// Find resolves the handle when none is cached.
func (t *Target) Find() {
	if t.handle != 0 {
		return
	}
	h, err := t.windows.FindWindow(t.title)
	t.lastErr = err
	if err != nil {
		return
	}
	t.handle = h
}

func (t *Target) lose() {
	t.handle = 0
	t.rect = Rect{}
	t.valid = false
}

// Update refreshes the rectangle and the focus flag, reacquiring the window by
// title if the cached handle has died.
func (t *Target) Update() {
	if t.handle != 0 && !t.windows.IsWindow(t.handle) {
		t.lose()
	}
	if t.handle == 0 {
		t.Find()
		if t.handle == 0 {
			return
		}
	}
	r, err := t.windows.WindowRect(t.handle)
	if err != nil {
		t.lastErr = err
		t.lose()
		return
	}
	t.lastErr = nil
	t.rect = r
	t.valid = t.windows.ForegroundWindow() == t.handle
}
