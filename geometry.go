// geometry.go - Points and rectangles in screen pixel space

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate. The origin is the top-left corner of the screen.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in the same layout as a Win32 RECT.
// Right >= Left and Bottom >= Top are expected but not enforced.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (r Rect) Width() int {
	return r.Right - r.Left
}

func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Center returns the midpoint, truncated to whole pixels.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// Sub moves r by -p, turning screen coordinates into coordinates relative to p.
func (r Rect) Sub(p Point) Rect {
	return Rect{Left: r.Left - p.X, Top: r.Top - p.Y, Right: r.Right - p.X, Bottom: r.Bottom - p.Y}
}

func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}
