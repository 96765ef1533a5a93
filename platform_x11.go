//go:build (linux && !android) || freebsd || netbsd || openbsd || dragonfly

// platform_x11.go - X11 window system backend (EWMH window manager required)

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type x11WindowSystem struct {
	conn *xgb.Conn
	root xproto.Window

	atomClientList   xproto.Atom
	atomActiveWindow xproto.Atom
	atomWMName       xproto.Atom
	atomUTF8String   xproto.Atom
	atomFrameExtents xproto.Atom

	keycodes map[uint32]uint8
	latch    *keyLatch
}

// NewWindowSystem connects to the X server named by $DISPLAY.
func NewWindowSystem() (WindowSystem, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	setup := xproto.Setup(conn)
	x := &x11WindowSystem{
		conn:  conn,
		root:  setup.DefaultScreen(conn).Root,
		latch: newKeyLatch(),
	}

	atoms := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_CLIENT_LIST", &x.atomClientList},
		{"_NET_ACTIVE_WINDOW", &x.atomActiveWindow},
		{"_NET_WM_NAME", &x.atomWMName},
		{"UTF8_STRING", &x.atomUTF8String},
		{"_NET_FRAME_EXTENTS", &x.atomFrameExtents},
	}
	for _, a := range atoms {
		reply, err := xproto.InternAtom(conn, false, uint16(len(a.name)), a.name).Reply()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("intern atom %s: %w", a.name, err)
		}
		*a.dst = reply.Atom
	}

	if err := x.loadKeyboardMapping(setup); err != nil {
		conn.Close()
		return nil, err
	}
	return x, nil
}

func (x *x11WindowSystem) loadKeyboardMapping(setup *xproto.SetupInfo) error {
	count := int(setup.MaxKeycode) - int(setup.MinKeycode) + 1
	reply, err := xproto.GetKeyboardMapping(x.conn, setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		return fmt.Errorf("keyboard mapping: %w", err)
	}
	syms := make([]uint32, len(reply.Keysyms))
	for i, s := range reply.Keysyms {
		syms[i] = uint32(s)
	}
	x.keycodes = keysymIndex(uint8(setup.MinKeycode), int(reply.KeysymsPerKeycode), syms)
	return nil
}

// topLevelWindows prefers the window manager's client list and falls back to
// the children of the root window.
func (x *x11WindowSystem) topLevelWindows() ([]xproto.Window, error) {
	prop, err := xproto.GetProperty(x.conn, false, x.root, x.atomClientList,
		xproto.AtomWindow, 0, 1<<16).Reply()
	if err == nil && prop.Format == 32 && prop.ValueLen > 0 {
		wins := make([]xproto.Window, 0, prop.ValueLen)
		for i := 0; i+4 <= len(prop.Value); i += 4 {
			wins = append(wins, xproto.Window(xgb.Get32(prop.Value[i:])))
		}
		return wins, nil
	}
	tree, err := xproto.QueryTree(x.conn, x.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query tree: %w", err)
	}
	return tree.Children, nil
}

func (x *x11WindowSystem) windowTitle(w xproto.Window) string {
	prop, err := xproto.GetProperty(x.conn, false, w, x.atomWMName,
		x.atomUTF8String, 0, 1024).Reply()
	if err == nil && len(prop.Value) > 0 {
		return string(prop.Value)
	}
	prop, err = xproto.GetProperty(x.conn, false, w, xproto.AtomWmName,
		xproto.AtomAny, 0, 1024).Reply()
	if err == nil {
		return string(prop.Value)
	}
	return ""
}

func (x *x11WindowSystem) FindWindow(title string) (Handle, error) {
	wins, err := x.topLevelWindows()
	if err != nil {
		return 0, err
	}
	for _, w := range wins {
		if x.windowTitle(w) == title {
			return Handle(w), nil
		}
	}
	return 0, nil
}

func (x *x11WindowSystem) IsWindow(h Handle) bool {
	if h == 0 {
		return false
	}
	_, err := xproto.GetWindowAttributes(x.conn, xproto.Window(h)).Reply()
	return err == nil
}

// WindowRect includes the window manager frame when _NET_FRAME_EXTENTS is
// published, matching GetWindowRect on Windows. Without it the client area is
// returned.
func (x *x11WindowSystem) WindowRect(h Handle) (Rect, error) {
	w := xproto.Window(h)
	geom, err := xproto.GetGeometry(x.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("geometry of window 0x%x: %w", uint32(w), err)
	}
	pos, err := xproto.TranslateCoordinates(x.conn, w, x.root, 0, 0).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("translate window 0x%x: %w", uint32(w), err)
	}
	left, top := int(pos.DstX), int(pos.DstY)
	r := Rect{
		Left:   left,
		Top:    top,
		Right:  left + int(geom.Width),
		Bottom: top + int(geom.Height),
	}
	prop, err := xproto.GetProperty(x.conn, false, w, x.atomFrameExtents,
		xproto.AtomCardinal, 0, 4).Reply()
	if err == nil {
		if ext, ok := decodeFrameExtents(prop.Format, prop.Value); ok {
			r = ext.outset(r)
		}
	}
	return r, nil
}

func (x *x11WindowSystem) ForegroundWindow() Handle {
	prop, err := xproto.GetProperty(x.conn, false, x.root, x.atomActiveWindow,
		xproto.AtomWindow, 0, 1).Reply()
	if err != nil || prop.Format != 32 || len(prop.Value) < 4 {
		return 0
	}
	return Handle(xgb.Get32(prop.Value))
}

// KeyPressed samples the global keymap. X11 has no "pressed since last call"
// bit, so presses shorter than one poll interval are missed.
func (x *x11WindowSystem) KeyPressed(k Key) bool {
	kc, ok := x.keycodes[k.Keysym()]
	if !ok {
		return false
	}
	km, err := xproto.QueryKeymap(x.conn).Reply()
	if err != nil {
		return false
	}
	return x.latch.observe(k, keymapBitSet(km.Keys, kc))
}

func (x *x11WindowSystem) Close() error {
	x.conn.Close()
	return nil
}
