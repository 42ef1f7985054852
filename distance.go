package kern

import (
	"cmp"
	"math"
	"slices"
)

// Distance returns the minimum euclidean distance between the boundaries of two
// outlines, with left moved by ⟨dx, height⟩ and right kept in place.
//
// Outlines that cross, or where one lies inside a filled area of the other, are
// interpenetrating and have distance 0. If either outline is empty, Distance returns
// [ErrEmptyOutline].
func Distance(left, right *Outline, height, dx float64) (float64, error) {
	if left.IsEmpty() || right.IsEmpty() {
		return math.Inf(1), ErrEmptyOutline
	}
	shift := Vec(dx, height)

	// Visit contour pairs closest-first so that the running minimum becomes tight
	// early and prunes most of the remaining pairs.
	type pair struct {
		l, r  *polyline
		bound float64
	}
	pairs := make([]pair, 0, len(left.contours)*len(right.contours))
	for i := range left.contours {
		lc := &left.contours[i]
		lb := lc.bounds.Translate(shift)
		for j := range right.contours {
			rc := &right.contours[j]
			pairs = append(pairs, pair{lc, rc, lb.Distance(rc.bounds)})
		}
	}
	slices.SortFunc(pairs, func(a, b pair) int { return cmp.Compare(a.bound, b.bound) })

	best := math.Inf(1)
	for _, p := range pairs {
		if p.bound >= best {
			break
		}
		best = polylineDistance(p.l, p.r, shift, best)
		if best == 0 {
			return 0, nil
		}
	}

	if left.bounds.Translate(shift).Distance(right.bounds) == 0 && overlaps(left, right, shift) {
		return 0, nil
	}
	return best, nil
}

// polylineDistance returns min(best, distance between l moved by shift and r).
func polylineDistance(l, r *polyline, shift Vec2, best float64) float64 {
	for i, box := range l.boxes {
		lbox := box.Translate(shift)
		if lbox.Distance(r.bounds) >= best {
			continue
		}
		ll := l.lines[i].Translate(shift)
		for j, rbox := range r.boxes {
			if lbox.Distance(rbox) >= best {
				continue
			}
			if d := ll.Distance(r.lines[j]); d < best {
				best = d
				if best == 0 {
					return 0
				}
			}
		}
	}
	return best
}

// overlaps reports whether a contour of one outline lies within the filled area of
// the other. It assumes the boundaries don't intersect, so testing one vertex per
// contour suffices.
func overlaps(left, right *Outline, shift Vec2) bool {
	for _, c := range left.contours {
		if right.Winding(c.points[0].Translate(shift)) != 0 {
			return true
		}
	}
	back := shift.Negate()
	for _, c := range right.contours {
		if left.Winding(c.points[0].Translate(back)) != 0 {
			return true
		}
	}
	return false
}
