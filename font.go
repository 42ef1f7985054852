package kern

// Source loads a font. Implementations for font files live in package fontsource.
type Source interface {
	Load() (*Font, error)
}

// SourceFunc adapts an ordinary function to the [Source] interface.
type SourceFunc func() (*Font, error)

// Load calls f.
func (f SourceFunc) Load() (*Font, error) { return f() }

// Font is a parsed font with one or more masters. A Font must not be modified once it
// has been handed to [NewDeterminer].
type Font struct {
	Name       string
	UnitsPerEm float64
	Masters    []*Master
}

// Master returns the master with the given name.
func (f *Font) Master(name string) (*Master, bool) {
	for _, m := range f.Masters {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Master is a named design variant of a font, such as a weight.
type Master struct {
	Name   string
	glyphs map[string]*Glyph
}

// NewMaster returns a master containing the given glyphs.
func NewMaster(name string, glyphs ...*Glyph) *Master {
	m := &Master{
		Name:   name,
		glyphs: make(map[string]*Glyph, len(glyphs)),
	}
	for _, g := range glyphs {
		m.AddGlyph(g)
	}
	return m
}

// AddGlyph adds g to the master, replacing any glyph of the same name.
func (m *Master) AddGlyph(g *Glyph) {
	if m.glyphs == nil {
		m.glyphs = make(map[string]*Glyph)
	}
	m.glyphs[g.Name] = g
}

// Glyph returns the glyph with the given name.
func (m *Master) Glyph(name string) (*Glyph, bool) {
	g, ok := m.glyphs[name]
	return g, ok
}

// NumGlyphs returns the number of glyphs in the master.
func (m *Master) NumGlyphs() int {
	return len(m.glyphs)
}

// Glyph is a named outline in design units. Contours holds one closed contour per
// element. Composite glyphs are decomposed by the font source before they get here.
type Glyph struct {
	Name string
	// Advance is the horizontal advance width. Zero means unknown, in which case the
	// right edge of the outline is used instead.
	Advance  float64
	Contours []BezPath
	Anchors  []Anchor
}

// Anchor returns the anchor with the given name.
func (g *Glyph) Anchor(name string) (Anchor, bool) {
	for _, a := range g.Anchors {
		if a.Name == name {
			return a, true
		}
	}
	return Anchor{}, false
}

// Anchor is a named attachment point of a glyph.
type Anchor struct {
	Name string
	Pos  Point
}
