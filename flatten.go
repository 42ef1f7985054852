package kern

// flattenTolerance is the maximum distance, in design units, between a curve and the
// polyline approximating it. It is well below what is visible at production sizes of
// 1000 or 2048 units per em.
const flattenTolerance = 0.5

// maxFlattenDepth bounds the number of halvings of a single curve. Curves with
// coordinates in the range of any real font reach the tolerance after far fewer.
const maxFlattenDepth = 16

type flattenable[T any] interface {
	Flatness() float64
	Subdivide() (T, T)
	End() Point
}

type flattenWork[T any] struct {
	seg   T
	depth int
}

// flattenCurve appends the points of a polyline approximating seg to out, excluding
// the curve's start point. Subdivision uses an explicit stack so that pathological
// curves cannot exhaust the goroutine stack.
func flattenCurve[T flattenable[T]](seg T, tolerance float64, out []Point) []Point {
	stack := []flattenWork[T]{{seg, 0}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// The negated comparison also accepts NaN, which would never converge.
		if w.depth >= maxFlattenDepth || !(w.seg.Flatness() > tolerance) {
			out = append(out, w.seg.End())
			continue
		}
		a, b := w.seg.Subdivide()
		stack = append(stack, flattenWork[T]{b, w.depth + 1}, flattenWork[T]{a, w.depth + 1})
	}
	return out
}

// FlattenContour approximates a single closed contour with a polyline. The returned
// polyline is implicitly closed: its last point connects back to the first, and a
// duplicated closing point is dropped. A contour without any points yields nil.
func FlattenContour(p BezPath, tolerance float64) []Point {
	var out []Point
	var cur option[Point]
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			out = append(out, el.P0)
			cur.set(el.P0)
		case QuadToKind:
			if p0 := cur.value; cur.isSet {
				out = flattenCurve(QuadBez{p0, el.P0, el.P1}, tolerance, out)
			} else {
				out = append(out, el.P1)
			}
			cur.set(el.P1)
		case CubicToKind:
			if p0 := cur.value; cur.isSet {
				out = flattenCurve(CubicBez{p0, el.P0, el.P1, el.P2}, tolerance, out)
			} else {
				out = append(out, el.P2)
			}
			cur.set(el.P2)
		case ClosePathKind:
		}
	}
	if n := len(out); n > 1 && out[n-1] == out[0] {
		out = out[:n-1]
	}
	return out
}

// FlattenGlyph converts the glyph's contours into an [Outline]. Contours without
// points are dropped; a glyph without any remaining contours produces an empty
// outline.
func FlattenGlyph(g *Glyph) *Outline {
	var polylines [][]Point
	for _, c := range g.Contours {
		for sub := range c.Contours() {
			if pts := FlattenContour(sub, flattenTolerance); len(pts) > 0 {
				polylines = append(polylines, pts)
			}
		}
	}
	return NewOutline(polylines...)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
