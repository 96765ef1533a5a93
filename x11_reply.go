//go:build (linux && !android) || freebsd || netbsd || openbsd || dragonfly

// x11_reply.go - Decoding of X11 window properties shared by the X11 backend

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import "github.com/jezek/xgb"

// frameExtents is the window manager decoration around a client window, as
// published in _NET_FRAME_EXTENTS.
type frameExtents struct {
	left, right, top, bottom int
}

// decodeFrameExtents reads the four CARDINALs of _NET_FRAME_EXTENTS in their
// left, right, top, bottom order.
func decodeFrameExtents(format byte, value []byte) (frameExtents, bool) {
	if format != 32 || len(value) < 16 {
		return frameExtents{}, false
	}
	return frameExtents{
		left:   int(xgb.Get32(value[0:])),
		right:  int(xgb.Get32(value[4:])),
		top:    int(xgb.Get32(value[8:])),
		bottom: int(xgb.Get32(value[12:])),
	}, true
}

// outset grows a client rectangle to include the decoration.
func (e frameExtents) outset(r Rect) Rect {
	return Rect{
		Left:   r.Left - e.left,
		Top:    r.Top - e.top,
		Right:  r.Right + e.right,
		Bottom: r.Bottom + e.bottom,
	}
}
