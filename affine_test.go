package kern

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Affine{2, 0, 0, 2, 0, 0}), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Affine{1, 0, 0, 1, 5, 6}), Pt(8, 10), epsilon)
	// A component transform in (xx, xy, yx, yy, dx, dy) order.
	assertNear(t, p.Transform(NewAffine([6]float64{1, 0, 0.5, 1, 10, 0})), Pt(15, 4), epsilon)
}

func TestAffineDeterminant(t *testing.T) {
	if d := (Affine{2, 0, 0, 3, 7, 7}).Determinant(); d != 6 {
		t.Errorf("got determinant %g, want 6", d)
	}
	if d := NewAffine([6]float64{1, 2, 2, 4, 0, 0}).Determinant(); d != 0 {
		t.Errorf("got determinant %g, want 0", d)
	}
	// Mirroring flips the sign.
	if d := (Affine{-1, 0, 0, 1, 0, 0}).Determinant(); d != -1 {
		t.Errorf("got determinant %g, want -1", d)
	}
}

func TestAffineNonFinite(t *testing.T) {
	if Identity.IsNaN() || Identity.IsInf() {
		t.Error("identity is not finite")
	}
	if !(Affine{1, 0, 0, math.NaN(), 0, 0}).IsNaN() {
		t.Error("expected NaN")
	}
	if !(Affine{1, 0, 0, 1, math.Inf(-1), 0}).IsInf() {
		t.Error("expected Inf")
	}
}
