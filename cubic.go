package kern

import "math"

// CubicBez is a cubic Bézier segment, as used by CFF outlines.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Flatness returns an upper bound for the distance between the curve and its chord,
// with both parametrized by t.
//
// For a degree n curve the bound is n(n−1)/8 times the largest second difference of
// the control points.
func (c CubicBez) Flatness() float64 {
	d1 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2))
	d2 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3))
	return 0.75 * math.Sqrt(max(d1.Hypot2(), d2.Hypot2()))
}

func (c CubicBez) End() Point {
	return c.P3
}
