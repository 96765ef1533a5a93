//go:build windows

// platform_windows.go - Win32 window system backend

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procFindWindowW      = user32.NewProc("FindWindowW")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

type win32WindowSystem struct{}

// NewWindowSystem returns the Win32 backend.
func NewWindowSystem() (WindowSystem, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("load user32.dll: %w", err)
	}
	return &win32WindowSystem{}, nil
}

func (w *win32WindowSystem) FindWindow(title string) (Handle, error) {
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("window title %q: %w", title, err)
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(name)))
	return Handle(hwnd), nil
}

func (w *win32WindowSystem) IsWindow(h Handle) bool {
	return h != 0 && windows.IsWindow(windows.HWND(h))
}

func (w *win32WindowSystem) WindowRect(h Handle) (Rect, error) {
	var r windows.Rect
	ok, _, callErr := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect(0x%x): %w", uintptr(h), callErr)
	}
	return Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}, nil
}

func (w *win32WindowSystem) ForegroundWindow() Handle {
	return Handle(windows.GetForegroundWindow())
}

// KeyPressed tests the low bit of GetAsyncKeyState, which the system sets when
// the key went down after the previous call.
func (w *win32WindowSystem) KeyPressed(k Key) bool {
	vk := k.VirtualKey()
	if vk == 0 {
		return false
	}
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return state&1 != 0
}

func (w *win32WindowSystem) Close() error {
	return nil
}
