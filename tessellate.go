// tessellate.go - Circle tessellation and 2D transforms for the drawing primitives

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import "math"

// CircleSegments is the fixed number of segments used for every circle.
const CircleSegments = 500

// Vec2 is a sub-pixel vertex handed to a Surface.
type Vec2 struct {
	X float32
	Y float32
}

func vec(p Point) Vec2 {
	return Vec2{X: float32(p.X), Y: float32(p.Y)}
}

// circleWalk produces steps points on a circle of the given radius around the
// origin, starting at (radius, 0). Each step rotates the previous point by
// 2*pi/segments using the tangential/radial factor recurrence, so no
// trigonometry is evaluated inside the loop.
func circleWalk(radius float64, segments, steps int) []Vec2 {
	if segments <= 0 || steps <= 0 {
		return nil
	}
	theta := 2 * math.Pi / float64(segments)
	tangential := math.Tan(theta)
	radial := math.Cos(theta)

	x, y := radius, 0.0
	pts := make([]Vec2, 0, steps)
	for range steps {
		pts = append(pts, Vec2{X: float32(x), Y: float32(y)})
		tx, ty := -y, x
		x += tx * tangential
		y += ty * tangential
		x *= radial
		y *= radial
	}
	return pts
}

// circleOutline returns the closed outline of a circle centred on c.
func circleOutline(c Point, radius float64, segments int) []Vec2 {
	pts := circleWalk(radius, segments, segments)
	cx, cy := float32(c.X), float32(c.Y)
	for i := range pts {
		pts[i].X += cx
		pts[i].Y += cy
	}
	return pts
}

// rotateAbout rotates pts in place by deg degrees around c. With the y axis
// pointing down a positive angle turns clockwise on screen.
func rotateAbout(pts []Vec2, c Vec2, deg float64) {
	if deg == 0 {
		return
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	for i, p := range pts {
		dx := float64(p.X - c.X)
		dy := float64(p.Y - c.Y)
		pts[i] = Vec2{
			X: c.X + float32(dx*cos-dy*sin),
			Y: c.Y + float32(dx*sin+dy*cos),
		}
	}
}

// rectCorners returns the corners of r clockwise from the top-left, rotated by
// deg degrees around the rectangle's centre.
func rectCorners(r Rect, deg float64) []Vec2 {
	pts := []Vec2{
		{X: float32(r.Left), Y: float32(r.Top)},
		{X: float32(r.Right), Y: float32(r.Top)},
		{X: float32(r.Right), Y: float32(r.Bottom)},
		{X: float32(r.Left), Y: float32(r.Bottom)},
	}
	rotateAbout(pts, vec(r.Center()), deg)
	return pts
}

// angleEndpoint returns the end of a line of the given length leaving start at
// deg degrees. Zero degrees points down the screen, 90 points right.
func angleEndpoint(start Point, deg, length float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: float32(float64(start.X) + sin*length),
		Y: float32(float64(start.Y) + cos*length),
	}
}
