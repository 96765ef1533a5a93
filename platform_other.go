//go:build !windows && !((linux && !android) || freebsd || netbsd || openbsd || dragonfly)

// platform_other.go - Fallback for hosts without a window system backend

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

func NewWindowSystem() (WindowSystem, error) {
	return nil, ErrUnsupportedPlatform
}
