package kern

import (
	"fmt"
	"math"
)

const (
	// solveTolerance is the width of the final bracket, in design units.
	solveTolerance = 0.01
	// maxSolveIterations bounds the bisection. Halving a bracket of 2⁶⁴ times the
	// tolerance is far more than any font coordinate range needs.
	maxSolveIterations = 64
	defaultProbes      = 16
)

// SolveParams describes a kerning problem for [Solve].
type SolveParams struct {
	// Target is the desired minimum distance between the outlines. Zero asks for
	// the outlines to touch. A negative target asks for overlap, which the
	// distance never reports, so the result is always [SolveParams.MinKern].
	Target float64
	// Height moves the left outline vertically.
	Height float64
	// MaxTuck limits how far the right glyph may move left of the left glyph's
	// advance, as a fraction of the left glyph's width.
	MaxTuck float64
	// Advance is the left glyph's advance width. If it is zero, the right edge of the
	// left outline is used as the advance.
	Advance float64
	// Probes is the number of sample offsets taken before bisecting. Zero selects a
	// default.
	Probes int
}

// origin returns the x position of the right glyph's origin for a kern of zero.
func (p SolveParams) origin(left *Outline) float64 {
	if p.Advance > 0 {
		return p.Advance
	}
	return left.Bounds().X1
}

// tuckWidth returns the width the maximum tuck ratio applies to.
func (p SolveParams) tuckWidth(left *Outline) float64 {
	if p.Advance > 0 {
		return p.Advance
	}
	return left.Bounds().Width()
}

// MinKern returns the smallest kern value the tuck limit permits.
func (p SolveParams) MinKern(left *Outline) float64 {
	return -p.MaxTuck * p.tuckWidth(left)
}

// KernDistance returns the distance between the outlines when the right glyph is
// placed at the left glyph's advance plus kern.
func KernDistance(left, right *Outline, p SolveParams, kern float64) (float64, error) {
	return Distance(left, right, p.Height, -(p.origin(left) + kern))
}

// Solve returns the kern value at which the distance between the outlines equals
// p.Target, never returning less than [SolveParams.MinKern].
//
// Beyond the point of first contact, distance is non-decreasing in the kern value,
// and Solve looks for the largest kern at which the distance is still at most the
// target. Because concave outlines can break that monotonicity, Solve first samples
// the distance at evenly spaced kerns between the tuck limit and a kern at which the
// outlines are certainly far enough apart, then bisects between the rightmost sample
// that is close enough and its neighbour. If no sample is close enough, the target
// could only be met by tucking further than permitted and the result is the tuck
// limit.
//
// Solve returns [ErrEmptyOutline] if either outline is empty, and [ErrNoSolution] if
// the vertical placement keeps the outlines further apart than the target at every
// offset.
func Solve(left, right *Outline, p SolveParams) (float64, error) {
	if left.IsEmpty() || right.IsEmpty() {
		return 0, ErrEmptyOutline
	}
	log := Logger()

	reach := max(p.Target, 0)
	lb := left.Bounds().Translate(Vec(0, p.Height))
	rb := right.Bounds()
	if _, gapY := lb.Gap(rb); gapY > reach {
		return 0, fmt.Errorf("%w: vertical gap %g exceeds target %g", ErrNoSolution, gapY, p.Target)
	}

	origin := p.origin(left)
	lower := p.MinKern(left)
	// At upper, the outlines are horizontally separated by more than the target.
	upper := lb.X1 - rb.X0 - origin + reach + 1
	if upper <= lower {
		return lower, nil
	}

	distance := func(kern float64) float64 {
		// Outlines are known to be non-empty, so Distance cannot fail.
		d, _ := Distance(left, right, p.Height, -(origin + kern))
		return d
	}

	n := p.Probes
	if n == 0 {
		n = defaultProbes
	}
	n = max(n, 2)
	kerns := make([]float64, n)
	dists := make([]float64, n)
	hit := -1
	for i := range n {
		kerns[i] = lower + (upper-lower)*float64(i)/float64(n-1)
		dists[i] = distance(kerns[i])
		if dists[i] <= p.Target {
			hit = i
		}
		if i > 0 && dists[i] < dists[i-1] {
			log.Debug("distance decreases with kern", "from", kerns[i-1], "to", kerns[i], "d0", dists[i-1], "d1", dists[i])
		}
	}
	if hit < 0 {
		log.Debug("target needs more tuck than permitted", "target", p.Target, "min_kern", lower, "distance", dists[0])
		return lower, nil
	}
	if hit == n-1 {
		return kerns[hit], nil
	}

	a, b := kerns[hit], kerns[hit+1]
	for i := 0; i < maxSolveIterations && b-a > solveTolerance; i++ {
		m := 0.5 * (a + b)
		d := distance(m)
		log.Debug("bisect", "kern", m, "distance", d)
		if d <= p.Target {
			a = m
		} else {
			b = m
		}
	}
	kern := 0.5 * (a + b)
	if math.IsNaN(kern) {
		return lower, nil
	}
	return max(kern, lower), nil
}
