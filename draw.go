// draw.go - Drawing primitives available to tick callbacks

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import "fmt"

// All drawing calls act on the frame currently being rendered and do nothing
// when called outside a tick callback. Angles are in degrees.

func (o *Overlay) DrawLine(start, end Point, c RGBA) {
	o.DrawLineWidth(start, end, 1, c)
}

func (o *Overlay) DrawLineWidth(start, end Point, width float32, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.StrokeLine(vec(start), vec(end), width, c)
}

// DrawLineFromAngle draws length pixels from start. Zero degrees points down,
// 90 degrees points right.
func (o *Overlay) DrawLineFromAngle(start Point, angle, length float64, c RGBA) {
	o.DrawLineFromAngleWidth(start, angle, length, 1, c)
}

func (o *Overlay) DrawLineFromAngleWidth(start Point, angle, length float64, width float32, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.StrokeLine(vec(start), angleEndpoint(start, angle, length), width, c)
}

func (o *Overlay) DrawFilledRect(r Rect, c RGBA) {
	o.DrawFilledRectFromAngle(r, 0, c)
}

// DrawFilledRectFromAngle fills r rotated around its centre.
func (o *Overlay) DrawFilledRectFromAngle(r Rect, angle float64, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.FillPolygon(rectCorners(r, angle), c)
}

func (o *Overlay) DrawEmptyRect(r Rect, c RGBA) {
	o.DrawEmptyRectFromAngleWidth(r, 0, 1, c)
}

func (o *Overlay) DrawEmptyRectWidth(r Rect, width float32, c RGBA) {
	o.DrawEmptyRectFromAngleWidth(r, 0, width, c)
}

func (o *Overlay) DrawEmptyRectFromAngle(r Rect, angle float64, c RGBA) {
	o.DrawEmptyRectFromAngleWidth(r, angle, 1, c)
}

func (o *Overlay) DrawEmptyRectFromAngleWidth(r Rect, angle float64, width float32, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.StrokePolygon(rectCorners(r, angle), width, c)
}

func (o *Overlay) DrawFilledCircle(center Point, radius float64, c RGBA) {
	o.DrawFilledCircleFromAngle(center, radius, 0, c)
}

// DrawFilledCircleFromAngle only moves where the tessellation starts, which
// matters for very large radii where the segments become visible.
func (o *Overlay) DrawFilledCircleFromAngle(center Point, radius, angle float64, c RGBA) {
	if o.surface == nil {
		return
	}
	pts := circleOutline(center, radius, CircleSegments)
	rotateAbout(pts, vec(center), angle)
	o.surface.FillPolygon(pts, c)
}

func (o *Overlay) DrawEmptyCircle(center Point, radius float64, c RGBA) {
	o.DrawEmptyCircleWidth(center, radius, 1, c)
}

func (o *Overlay) DrawEmptyCircleWidth(center Point, radius float64, width float32, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.StrokePolygon(circleOutline(center, radius, CircleSegments), width, c)
}

// DrawFilledDot draws a square point of the given size centred on at.
func (o *Overlay) DrawFilledDot(at Point, size float32, c RGBA) {
	if o.surface == nil {
		return
	}
	o.surface.FillDot(vec(at), size, c)
}

// DrawText centres text horizontally on pos with the first baseline at pos.Y.
func (o *Overlay) DrawText(text string, pos Point, c RGBA) {
	o.DrawTextAnchored(text, pos, AnchorBaselineCenter, c)
}

// DrawTextAnchored places the text block so that its anchor point lands on pos.
// Lines are separated by '\n'.
func (o *Overlay) DrawTextAnchored(text string, pos Point, anchor Anchor, c RGBA) {
	if o.surface == nil {
		return
	}
	for _, l := range layoutText(text, pos, anchor) {
		if l.text == "" {
			continue
		}
		o.surface.DrawGlyphs(l.text, l.origin, c)
	}
}

// DrawTest draws a calibration pattern over r together with the frame timing.
func (o *Overlay) DrawTest(r Rect) {
	o.DrawEmptyRect(r, White)
	o.DrawLine(Point{r.Left, r.Top}, Point{r.Right, r.Bottom}, White)
	o.DrawLine(Point{r.Right, r.Top}, Point{r.Left, r.Bottom}, White)
	o.DrawEmptyCircleWidth(r.Center(), 100, 5, Orange)
	o.DrawText(fmt.Sprintf("%d fps", o.FPS()), Point{r.Left, r.Top}, Green)
	o.DrawText(fmt.Sprintf("%d ms", o.MS()), Point{r.Left, r.Top + 30}, Green)
}
