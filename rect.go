package kern

import "math"

// Rect is an axis-aligned rectangle. Rectangles produced by this package always have
// X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// emptyRect is the identity of [Rect.Union] and [Rect.UnionPoint].
var emptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Translate returns the rectangle moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Gap returns the horizontal and vertical gaps between two rectangles. A gap is zero
// when the rectangles overlap along that axis.
func (r Rect) Gap(o Rect) (dx, dy float64) {
	dx = max(o.X0-r.X1, r.X0-o.X1, 0)
	dy = max(o.Y0-r.Y1, r.Y0-o.Y1, 0)
	return dx, dy
}

// Distance returns the euclidean distance between the closest points of two
// rectangles. It is a lower bound for the distance between any shapes the rectangles
// contain.
func (r Rect) Distance(o Rect) float64 {
	dx, dy := r.Gap(o)
	return math.Hypot(dx, dy)
}
