package kern

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"
)

func TestDetermineKern(t *testing.T) {
	d := newTestDeterminer(t)
	for _, tc := range []struct {
		left, right, master  string
		target, height, tuck float64
		want                 float64
	}{
		{"A", "B", "Regular", 50, 0, 1, 50},
		{"A", "B", "Regular", -10, 0, 0, 0},
		// Overlap is never reported, so a negative target tucks to the limit.
		{"A", "B", "Regular", -10, 0, 1, -100},
		{"A", "B", "Regular", 0, 0, 0.5, 0},
		{"A", "B", "Bold", 30, 0, 1, 30},
		// Raised by 205, the corners are 5 apart vertically.
		{"A", "B", "Regular", 10, 205, 0.25, 8.660254},
		{"tall", "A", "Regular", 40, 0, 1, 20},
	} {
		name := fmt.Sprintf("%s%s/%s/%g", tc.left, tc.right, tc.master, tc.target)
		t.Run(name, func(t *testing.T) {
			got, err := d.DetermineKern(tc.left, tc.right, tc.master, tc.target, tc.height, tc.tuck)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tc.want, got, cmpopts.EquateApprox(0, 2*solveTolerance))
		})
	}
}

func TestDetermineKernErrors(t *testing.T) {
	d := newTestDeterminer(t)
	for _, tc := range []struct {
		left, right, master  string
		target, height, tuck float64
		want                 error
	}{
		{"A", "Z", "Regular", 50, 0, 1, ErrGlyphNotFound},
		{"Z", "A", "Regular", 50, 0, 1, ErrGlyphNotFound},
		{"o", "A", "Bold", 50, 0, 1, ErrGlyphNotFound},
		{"A", "B", "Light", 50, 0, 1, ErrMasterNotFound},
		{"A", "space", "Regular", 50, 0, 1, ErrEmptyOutline},
		{"space", "A", "Regular", 50, 0, 1, ErrEmptyOutline},
		{"A", "B", "Regular", 50, 1000, 1, ErrNoSolution},
		{"A", "B", "Regular", 50, 0, -1, ErrInvalidQuery},
		{"A", "B", "Regular", math.NaN(), 0, 1, ErrInvalidQuery},
		{"A", "B", "Regular", math.Inf(1), 0, 1, ErrInvalidQuery},
		{"A", "B", "Regular", 50, math.Inf(-1), 1, ErrInvalidQuery},
		{"A", "B", "Regular", 50, 0, math.Inf(1), ErrInvalidQuery},
	} {
		_, err := d.DetermineKern(tc.left, tc.right, tc.master, tc.target, tc.height, tc.tuck)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s/%s in %s: got error %v, want %v", tc.left, tc.right, tc.master, err, tc.want)
		}
	}
}

func TestDetermineKernErrorContext(t *testing.T) {
	d := newTestDeterminer(t)
	_, err := d.DetermineKern("A", "Z", "Regular", 50, 0, 1)
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Fatalf("got error %v, want ErrGlyphNotFound", err)
	}
	if want := `kerning A/Z in "Regular": `; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got error %q, want prefix %q", err, want)
	}

	_, err = d.Distance("A", "B", "Light", 0, 0)
	if !errors.Is(err, ErrMasterNotFound) {
		t.Fatalf("got error %v, want ErrMasterNotFound", err)
	}
	if want := `distance A/B in "Light": `; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got error %q, want prefix %q", err, want)
	}
}

func TestNewDeterminerErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, src := range []Source{
		SourceFunc(func() (*Font, error) { return nil, boom }),
		SourceFunc(func() (*Font, error) { return &Font{Name: "Empty"}, nil }),
	} {
		_, err := NewDeterminer(src)
		if !errors.Is(err, ErrFontLoad) {
			t.Errorf("got error %v, want ErrFontLoad", err)
		}
		var lerr *FontLoadError
		if !errors.As(err, &lerr) {
			t.Errorf("got error %T, want *FontLoadError", err)
		}
	}
	_, err := NewDeterminer(SourceFunc(func() (*Font, error) { return nil, boom }))
	if !errors.Is(err, boom) {
		t.Errorf("got error %v, want it to wrap %v", err, boom)
	}
}

func TestDetermineKernIdempotent(t *testing.T) {
	d := newTestDeterminer(t)
	first, err := d.DetermineKern("o", "A", "Regular", 37, 45, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		got, err := d.DetermineKern("o", "A", "Regular", 37, 45, 0.2)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("got %v, previously %v", got, first)
		}
	}
}

func testQueries() []Query {
	var qs []Query
	glyphs := []string{"A", "B", "o", "tall", "exit"}
	for _, l := range glyphs {
		for _, r := range glyphs {
			for _, height := range []float64{-80, 0, 120} {
				qs = append(qs, Query{Left: l, Right: r, Master: "Regular", TargetDistance: 40, Height: height, MaxTuck: 0.3})
			}
		}
	}
	return qs
}

func TestDetermineKernConcurrent(t *testing.T) {
	queries := testQueries()

	seq := newTestDeterminer(t)
	want := make([]float64, len(queries))
	for i, q := range queries {
		k, err := seq.DetermineKern(q.Left, q.Right, q.Master, q.TargetDistance, q.Height, q.MaxTuck)
		if err != nil {
			t.Fatalf("query %d: %v", i, err)
		}
		want[i] = k
	}

	d := newTestDeterminer(t)
	got := make([]float64, len(queries))
	for range 4 {
		var g errgroup.Group
		for i, q := range queries {
			g.Go(func() error {
				k, err := d.DetermineKern(q.Left, q.Right, q.Master, q.TargetDistance, q.Height, q.MaxTuck)
				if err != nil {
					return err
				}
				if k != want[i] {
					return fmt.Errorf("query %d: got %v, want %v", i, k, want[i])
				}
				got[i] = k
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatal(err)
		}
	}
	diff(t, want, got)
}

func TestDetermineKerns(t *testing.T) {
	queries := testQueries()
	d := newTestDeterminer(t, WithConcurrency(3))
	got, err := d.DetermineKerns(context.Background(), queries)
	if err != nil {
		t.Fatal(err)
	}
	for i, q := range queries {
		want, err := d.DetermineKern(q.Left, q.Right, q.Master, q.TargetDistance, q.Height, q.MaxTuck)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != want {
			t.Errorf("query %d: got %v, want %v", i, got[i], want)
		}
	}

	bad := append(queries[:2:2], Query{Left: "A", Right: "Z", Master: "Regular"})
	if _, err := d.DetermineKerns(context.Background(), bad); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("got error %v, want ErrGlyphNotFound", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.DetermineKerns(ctx, queries); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}

func TestExitAnchor(t *testing.T) {
	plain := newTestDeterminer(t)
	cursive := newTestDeterminer(t, WithExitAnchor("exit"))

	want, err := plain.DetermineKern("exit", "B", "Regular", 20, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The anchor sits at y = 50, so a height of 50 becomes 0.
	got, err := cursive.DetermineKern("exit", "B", "Regular", 20, 50, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)

	// Glyphs without the anchor and non-positive heights are unaffected.
	for _, tc := range []struct {
		left   string
		height float64
	}{{"A", 50}, {"exit", -30}} {
		want, err := plain.DetermineKern(tc.left, "B", "Regular", 20, tc.height, 1)
		if err != nil {
			t.Fatal(err)
		}
		got, err := cursive.DetermineKern(tc.left, "B", "Regular", 20, tc.height, 1)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestDeterminerDistance(t *testing.T) {
	d := newTestDeterminer(t)
	got, err := d.Distance("A", "B", "Regular", 0, 30)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 30.0, got)

	got, err = d.Distance("A", "B", "Regular", 230, 40)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 50.0, got, cmpopts.EquateApprox(0, 1e-9))
}
