// surface.go - The immediate-mode drawing context of one frame

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

// Surface is what a display hands to the overlay for the duration of one frame.
// Coordinates are physical pixels with the origin at the overlay window's
// top-left corner. Target.Rect is already in this space. Nothing drawn is
// retained between frames.
type Surface interface {
	Size() (width, height int)
	StrokeLine(from, to Vec2, width float32, c RGBA)
	// StrokePolygon draws the closed outline through pts.
	StrokePolygon(pts []Vec2, width float32, c RGBA)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []Vec2, c RGBA)
	FillDot(at Vec2, size float32, c RGBA)
	// DrawGlyphs draws one line of text with its baseline starting at origin
	// using the fixed 7x13 bitmap face.
	DrawGlyphs(s string, origin Point, c RGBA)
}
