package kern

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Query describes one kerning problem. See [Determiner.DetermineKern] for the meaning
// of the fields.
type Query struct {
	Left           string
	Right          string
	Master         string
	TargetDistance float64
	Height         float64
	MaxTuck        float64
}

// Determiner computes kern values for glyph pairs of one font. The font is loaded once
// by [NewDeterminer]; flattened outlines are cached for the lifetime of the
// Determiner. All methods are safe for concurrent use.
type Determiner struct {
	font  *Font
	cache *outlineCache
	opts  options
}

// NewDeterminer loads the font from src. Any failure, including a font without
// masters, is reported as a [*FontLoadError].
func NewDeterminer(src Source, opts ...Option) (*Determiner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := ""
	if s, ok := src.(fmt.Stringer); ok {
		name = s.String()
	}
	font, err := src.Load()
	if err != nil {
		return nil, &FontLoadError{Source: name, Err: err}
	}
	if font == nil || len(font.Masters) == 0 {
		return nil, &FontLoadError{Source: name, Err: errors.New("font has no masters")}
	}

	log := Logger()
	log.Info("loaded font", "source", name, "font", font.Name, "masters", len(font.Masters))
	for _, m := range font.Masters {
		log.Debug("master", "name", m.Name, "glyphs", m.NumGlyphs())
	}
	return &Determiner{
		font:  font,
		cache: newOutlineCache(font),
		opts:  o,
	}, nil
}

// Font returns the loaded font. It must not be modified.
func (d *Determiner) Font() *Font {
	return d.font
}

// DetermineKern returns the kern value that places right after left so that the
// closest points of their outlines are targetDistance apart.
//
// The left glyph is moved up by height (which may be negative); the right glyph is
// placed at the left glyph's advance plus the kern value. The result is never less
// than −maxTuck times the left glyph's advance width: if the target distance can
// only be reached by tucking the right glyph further under the left one, the result
// is that limit instead. A negative targetDistance therefore always yields that
// limit.
//
// Errors match [ErrMasterNotFound], [ErrGlyphNotFound], [ErrEmptyOutline],
// [ErrNoSolution] or [ErrInvalidQuery].
func (d *Determiner) DetermineKern(left, right, master string, targetDistance, height, maxTuck float64) (float64, error) {
	if !finite(targetDistance) || !finite(height) || !finite(maxTuck) || maxTuck < 0 {
		return 0, fmt.Errorf("%w: target %g, height %g, max tuck %g", ErrInvalidQuery, targetDistance, height, maxTuck)
	}
	lo, ro, p, err := d.prepare(left, right, master, height)
	if err != nil {
		return 0, fmt.Errorf("kerning %s/%s in %q: %w", left, right, master, err)
	}
	p.Target = targetDistance
	p.MaxTuck = maxTuck
	kern, err := Solve(lo, ro, p)
	if err != nil {
		return 0, fmt.Errorf("kerning %s/%s in %q: %w", left, right, master, err)
	}
	Logger().Debug("determined kern", "left", left, "right", right, "master", master, "kern", kern)
	return kern, nil
}

// Distance returns the minimum distance between the outlines of left and right when
// left is moved up by height and right is placed at the left glyph's advance plus
// kern. Height is used exactly as given; exit anchors are not applied.
func (d *Determiner) Distance(left, right, master string, height, kern float64) (float64, error) {
	lo, ro, p, err := d.prepare(left, right, master, height)
	if err != nil {
		return 0, fmt.Errorf("distance %s/%s in %q: %w", left, right, master, err)
	}
	p.Height = height
	return KernDistance(lo, ro, p, kern)
}

// DetermineKerns evaluates a batch of queries concurrently and returns the kern values
// in query order. It stops at the first error or when ctx is cancelled.
func (d *Determiner) DetermineKerns(ctx context.Context, queries []Query) ([]float64, error) {
	kerns := make([]float64, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.concurrency)
	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			k, err := d.DetermineKern(q.Left, q.Right, q.Master, q.TargetDistance, q.Height, q.MaxTuck)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			kerns[i] = k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return kerns, nil
}

func (d *Determiner) prepare(left, right, master string, height float64) (lo, ro *Outline, p SolveParams, err error) {
	lo, lg, err := d.cache.getOrBuild(left, master)
	if err != nil {
		return nil, nil, p, err
	}
	ro, _, err = d.cache.getOrBuild(right, master)
	if err != nil {
		return nil, nil, p, err
	}
	if name := d.opts.exitAnchor; name != "" && height > 0 {
		if a, ok := lg.Anchor(name); ok {
			height -= a.Pos.Y
		}
	}
	p = SolveParams{
		Height:  height,
		Advance: lg.Advance,
		Probes:  d.opts.probes,
	}
	return lo, ro, p, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
