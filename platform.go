// platform.go - Host window system interface

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import "errors"

// Handle is an opaque host window identifier (HWND on Windows, an X11 window
// id elsewhere). Zero means no window.
type Handle uintptr

// WindowSystem is the slice of the host window manager the overlay needs.
// Implementations are used from a single goroutine.
type WindowSystem interface {
	// FindWindow looks a top-level window up by exact title. A missing
	// window is reported as 0 with a nil error.
	FindWindow(title string) (Handle, error)
	// IsWindow reports whether h still refers to a live window.
	IsWindow(h Handle) bool
	// WindowRect returns the bounds of h in physical screen pixels, including
	// the window manager frame where the platform reports one.
	WindowRect(h Handle) (Rect, error)
	// ForegroundWindow returns the window that currently has focus.
	ForegroundWindow() Handle
	// KeyPressed reports whether k was pressed since the previous query
	// for k.
	KeyPressed(k Key) bool
	Close() error
}

// ErrUnsupportedPlatform is returned by NewWindowSystem on hosts with no
// window system backend.
var ErrUnsupportedPlatform = errors.New("glasspane: no window system backend for this platform")
