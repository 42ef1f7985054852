package kern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// rectGlyph returns a glyph consisting of a single rectangle.
func rectGlyph(name string, r Rect, advance float64) *Glyph {
	return &Glyph{
		Name:     name,
		Advance:  advance,
		Contours: []BezPath{Rectangle(r)},
	}
}

// circle returns a closed contour approximating a circle with four cubic Béziers.
func circle(center Point, radius float64) BezPath {
	const k = 0.5522847498307936
	cx, cy := center.X, center.Y
	r := radius
	var p BezPath
	p.MoveTo(Pt(cx+r, cy))
	p.CubicTo(Pt(cx+r, cy+k*r), Pt(cx+k*r, cy+r), Pt(cx, cy+r))
	p.CubicTo(Pt(cx-k*r, cy+r), Pt(cx-r, cy+k*r), Pt(cx-r, cy))
	p.CubicTo(Pt(cx-r, cy-k*r), Pt(cx-k*r, cy-r), Pt(cx, cy-r))
	p.CubicTo(Pt(cx+k*r, cy-r), Pt(cx+r, cy-k*r), Pt(cx+r, cy))
	p.ClosePath()
	return p
}

// testFont returns a font with two masters. "Regular" holds:
//   - "A", "B": 100×200 rectangles at the origin with an advance of 100
//   - "o": a circle of radius 200 with a counter of radius 120, advance 500
//   - "tall": a 60×600 rectangle, advance 100
//   - "exit": like "A", with an exit anchor at y = 50
//   - "space": no contours, advance 250
//
// "Bold" holds wider versions of "A" and "B".
func testFont() *Font {
	counter := circle(Pt(250, 250), 120)
	// Reverse the counter so that it winds opposite to the outer contour.
	var rev BezPath
	rev.MoveTo(Pt(370, 250))
	for i := len(counter) - 2; i >= 1; i-- {
		el := counter[i]
		var start Point
		if prev, ok := counter[i-1].EndPoint(); ok {
			start = prev
		}
		rev.CubicTo(el.P1, el.P0, start)
	}
	rev.ClosePath()

	regular := NewMaster("Regular",
		rectGlyph("A", Rect{0, 0, 100, 200}, 100),
		rectGlyph("B", Rect{0, 0, 100, 200}, 100),
		&Glyph{Name: "o", Advance: 500, Contours: []BezPath{circle(Pt(250, 250), 200), rev}},
		rectGlyph("tall", Rect{20, 0, 80, 600}, 100),
		&Glyph{
			Name:     "exit",
			Advance:  100,
			Contours: []BezPath{Rectangle(Rect{0, 0, 100, 200})},
			Anchors:  []Anchor{{Name: "exit", Pos: Pt(100, 50)}},
		},
		&Glyph{Name: "space", Advance: 250},
	)
	bold := NewMaster("Bold",
		rectGlyph("A", Rect{0, 0, 160, 200}, 160),
		rectGlyph("B", Rect{0, 0, 160, 200}, 160),
	)
	return &Font{
		Name:       "Test",
		UnitsPerEm: 1000,
		Masters:    []*Master{regular, bold},
	}
}

func newTestDeterminer(t testing.TB, opts ...Option) *Determiner {
	t.Helper()
	font := testFont()
	d, err := NewDeterminer(SourceFunc(func() (*Font, error) { return font, nil }), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
