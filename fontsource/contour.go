package fontsource

import "honnef.co/go/kern"

// contourBuilder splits a stream of drawing commands into closed contours.
type contourBuilder struct {
	contours []kern.BezPath
	cur      kern.BezPath
}

func (b *contourBuilder) flush() {
	if len(b.cur) > 0 {
		if b.cur[len(b.cur)-1].Kind != kern.ClosePathKind {
			b.cur.ClosePath()
		}
		b.contours = append(b.contours, b.cur)
	}
	b.cur = nil
}

func (b *contourBuilder) moveTo(p kern.Point) {
	b.flush()
	b.cur.MoveTo(p)
}

func (b *contourBuilder) lineTo(p kern.Point) {
	b.start(p)
	b.cur.LineTo(p)
}

func (b *contourBuilder) quadTo(p1, p2 kern.Point) {
	b.start(p1)
	b.cur.QuadTo(p1, p2)
}

func (b *contourBuilder) cubicTo(p1, p2, p3 kern.Point) {
	b.start(p1)
	b.cur.CubicTo(p1, p2, p3)
}

func (b *contourBuilder) closePath() {
	b.flush()
}

// start makes sure a contour that lacks an initial move begins somewhere.
func (b *contourBuilder) start(p kern.Point) {
	if len(b.cur) == 0 {
		b.cur.MoveTo(p)
	}
}

// finish returns all contours built so far.
func (b *contourBuilder) finish() []kern.BezPath {
	b.flush()
	out := b.contours
	b.contours = nil
	return out
}
