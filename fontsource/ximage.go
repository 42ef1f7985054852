package fontsource

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/kern"
)

// parseCollection reads a TrueType or OpenType collection. Every font of the
// collection becomes one master, which is how families ship their weights in a
// single file.
func parseCollection(data []byte) (*kern.Font, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	out := &kern.Font{}
	for i := range c.NumFonts() {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("font %d of collection: %w", i, err)
		}
		m, err := readXImageFont(f, out)
		if err != nil {
			return nil, fmt.Errorf("font %d of collection: %w", i, err)
		}
		if _, dup := out.Master(m.Name); dup {
			m.Name = fmt.Sprintf("%s #%d", m.Name, i)
		}
		out.Masters = append(out.Masters, m)
	}
	return out, nil
}

// parseXImage reads a single OpenType or TrueType font with golang.org/x/image. It
// serves as a fallback for fonts the primary parser rejects.
func parseXImage(data []byte) (*kern.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	out := &kern.Font{}
	m, err := readXImageFont(f, out)
	if err != nil {
		return nil, err
	}
	out.Masters = []*kern.Master{m}
	return out, nil
}

// readXImageFont converts f into a master. The font's name and units per em are
// recorded in out unless they are already set.
func readXImageFont(f *sfnt.Font, out *kern.Font) (*kern.Master, error) {
	var buf sfnt.Buffer
	upem := f.UnitsPerEm()
	if out.UnitsPerEm == 0 {
		out.UnitsPerEm = float64(upem)
	}
	if out.Name == "" {
		out.Name, _ = f.Name(&buf, sfnt.NameIDFamily)
	}
	subfamily, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	m := kern.NewMaster(masterName(subfamily))

	// With one pixel per font unit, segment coordinates are design units in 26.6
	// fixed point.
	ppem := fixed.I(int(upem))
	for i := range f.NumGlyphs() {
		x := sfnt.GlyphIndex(i)
		name, err := f.GlyphName(&buf, x)
		if err != nil {
			name = ""
		}
		name = glyphName(m, name, i)

		advance, err := f.GlyphAdvance(&buf, x, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", name, err)
		}
		segments, err := f.LoadGlyph(&buf, x, ppem, nil)
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			kern.Logger().Warn("colored glyph has no outline", "glyph", name)
			segments, err = nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", name, err)
		}

		var b contourBuilder
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				b.moveTo(fixedPoint(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				b.lineTo(fixedPoint(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				b.quadTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				b.cubicTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2]))
			}
		}
		m.AddGlyph(&kern.Glyph{
			Name:     name,
			Advance:  fixedToFloat64(advance),
			Contours: b.finish(),
		})
	}
	return m, nil
}

// fixedPoint converts a segment point to design units. x/image uses a y-down
// coordinate system, kern uses the font's y-up system.
func fixedPoint(p fixed.Point26_6) kern.Point {
	return kern.Pt(fixedToFloat64(p.X), -fixedToFloat64(p.Y))
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
