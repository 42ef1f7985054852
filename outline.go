package kern

import "slices"

// Outline is a glyph outline flattened to closed polylines, together with the
// bounding boxes the distance computation uses for pruning. Outlines are immutable
// and safe for concurrent use.
type Outline struct {
	contours []polyline
	bounds   Rect
	segments int
}

type polyline struct {
	points []Point
	// lines[i] connects points[i] and points[(i+1)%len(points)].
	lines  []Line
	boxes  []Rect
	bounds Rect
}

// NewOutline builds an outline from closed polylines. Every polyline is implicitly
// closed; empty polylines are ignored.
func NewOutline(polylines ...[]Point) *Outline {
	o := &Outline{bounds: emptyRect}
	for _, pts := range polylines {
		if len(pts) == 0 {
			continue
		}
		pl := polyline{
			points: slices.Clone(pts),
			lines:  make([]Line, len(pts)),
			boxes:  make([]Rect, len(pts)),
			bounds: emptyRect,
		}
		for i, p := range pl.points {
			l := Line{p, pl.points[(i+1)%len(pl.points)]}
			pl.lines[i] = l
			pl.boxes[i] = l.BoundingBox()
			pl.bounds = pl.bounds.UnionPoint(p)
		}
		o.bounds = o.bounds.Union(pl.bounds)
		o.segments += len(pl.lines)
		o.contours = append(o.contours, pl)
	}
	return o
}

// IsEmpty reports whether the outline has no contours, as is the case for
// whitespace glyphs.
func (o *Outline) IsEmpty() bool {
	return len(o.contours) == 0
}

// Bounds returns the bounding box of all contours. The result is meaningless for
// empty outlines; check [Outline.IsEmpty] first.
func (o *Outline) Bounds() Rect {
	return o.bounds
}

// NumSegments returns the total number of line segments across all contours.
func (o *Outline) NumSegments() int {
	return o.segments
}

// Winding returns the winding number of pt with respect to the outline, summed over
// all contours. Under the nonzero rule, a point is inside the glyph if the result is
// not zero.
func (o *Outline) Winding(pt Point) int {
	w := 0
	for i := range o.contours {
		c := &o.contours[i]
		if pt.X < c.bounds.X0 || pt.X > c.bounds.X1 || pt.Y < c.bounds.Y0 || pt.Y > c.bounds.Y1 {
			continue
		}
		w += c.winding(pt)
	}
	return w
}

func (c *polyline) winding(pt Point) int {
	w := 0
	for _, l := range c.lines {
		if l.P0.Y <= pt.Y {
			if l.P1.Y > pt.Y && orientation(l.P0, l.P1, pt) > 0 {
				w++
			}
		} else {
			if l.P1.Y <= pt.Y && orientation(l.P0, l.P1, pt) < 0 {
				w--
			}
		}
	}
	return w
}
