package fontsource

import (
	"bytes"
	"errors"
	"fmt"

	"honnef.co/go/kern"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// parseSFNT reads an OpenType or TrueType font. Such fonts have a single master,
// named after the font's subfamily.
func parseSFNT(data []byte) (*kern.Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if info.Outlines == nil {
		return nil, errors.New("font has no glyph outlines")
	}

	m := kern.NewMaster(masterName(info.Subfamily()))
	for i := range info.NumGlyphs() {
		gid := glyph.ID(i)
		var b contourBuilder
		for cmd, pts := range info.Outlines.Path(gid) {
			switch cmd {
			case path.CmdMoveTo:
				b.moveTo(point(pts[0]))
			case path.CmdLineTo:
				b.lineTo(point(pts[0]))
			case path.CmdQuadTo:
				b.quadTo(point(pts[0]), point(pts[1]))
			case path.CmdCubeTo:
				b.cubicTo(point(pts[0]), point(pts[1]), point(pts[2]))
			case path.CmdClose:
				b.closePath()
			}
		}
		m.AddGlyph(&kern.Glyph{
			Name:     glyphName(m, info.GlyphName(gid), i),
			Advance:  float64(info.GlyphWidth(gid)),
			Contours: b.finish(),
		})
	}

	return &kern.Font{
		Name:       info.FamilyName,
		UnitsPerEm: float64(info.UnitsPerEm),
		Masters:    []*kern.Master{m},
	}, nil
}

func point(v vec.Vec2) kern.Point {
	return kern.Pt(v.X, v.Y)
}

// masterName returns the name used for the only master of a binary font.
func masterName(subfamily string) string {
	if subfamily == "" {
		return "Regular"
	}
	return subfamily
}

// glyphName returns name, or a name derived from the glyph index if name is empty
// or already taken.
func glyphName(m *kern.Master, name string, gid int) string {
	if name == "" {
		return fmt.Sprintf("glyph%05d", gid)
	}
	if _, dup := m.Glyph(name); dup {
		return fmt.Sprintf("%s.%d", name, gid)
	}
	return name
}
