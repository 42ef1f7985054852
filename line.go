package kern

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// BoundingBox returns the smallest rectangle containing the line. The result always
// has non-negative width and height.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the closest point on the line,
// as well as the parameter of that closest point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Crosses reports whether the interiors of the two segments cross each other.
// Segments that merely touch, or that are collinear, do not cross.
func (l Line) Crosses(o Line) bool {
	d1 := orientation(o.P0, o.P1, l.P0)
	d2 := orientation(o.P0, o.P1, l.P1)
	d3 := orientation(l.P0, l.P1, o.P0)
	d4 := orientation(l.P0, l.P1, o.P1)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Distance returns the minimum euclidean distance between two line segments.
//
// For segments that don't cross, the minimum is always attained at an endpoint of one
// of them, so it suffices to project the four endpoints onto the other segment.
func (l Line) Distance(o Line) float64 {
	if l.Crosses(o) {
		return 0
	}
	a, _ := l.Nearest(o.P0)
	b, _ := l.Nearest(o.P1)
	c, _ := o.Nearest(l.P0)
	d, _ := o.Nearest(l.P1)
	return math.Sqrt(min(a, b, c, d))
}

// orientation returns a positive value if c lies to the left of the directed line
// from a to b, a negative value if it lies to the right, and zero if the three points
// are collinear.
func orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
