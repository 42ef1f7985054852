package fontsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"honnef.co/go/kern"
)

// jsonFont is the top-level object of a JSON source.
type jsonFont struct {
	Name       string       `json:"name"`
	UnitsPerEm float64      `json:"unitsPerEm"`
	Masters    []jsonMaster `json:"masters"`
}

type jsonMaster struct {
	Name   string      `json:"name"`
	Glyphs []jsonGlyph `json:"glyphs"`
}

type jsonGlyph struct {
	Name       string          `json:"name"`
	Advance    float64         `json:"advance"`
	Contours   [][]jsonPoint   `json:"contours"`
	Components []jsonComponent `json:"components"`
	Anchors    []jsonAnchor    `json:"anchors"`
}

type jsonPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type,omitempty"`
}

type jsonComponent struct {
	Glyph     string      `json:"glyph"`
	Transform *[6]float64 `json:"transform,omitempty"`
}

type jsonAnchor struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func parseJSON(data []byte) (*kern.Font, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var jf jsonFont
	if err := dec.Decode(&jf); err != nil {
		return nil, err
	}

	out := &kern.Font{
		Name:       jf.Name,
		UnitsPerEm: jf.UnitsPerEm,
	}
	for _, jm := range jf.Masters {
		if jm.Name == "" {
			return nil, errors.New("master without a name")
		}
		if _, dup := out.Master(jm.Name); dup {
			return nil, fmt.Errorf("duplicate master %q", jm.Name)
		}
		m, err := decomposeMaster(jm)
		if err != nil {
			return nil, fmt.Errorf("master %q: %w", jm.Name, err)
		}
		out.Masters = append(out.Masters, m)
	}
	return out, nil
}

// decomposeMaster converts the glyphs of a master, replacing components by the
// transformed contours of the glyphs they refer to.
func decomposeMaster(jm jsonMaster) (*kern.Master, error) {
	byName := make(map[string]*jsonGlyph, len(jm.Glyphs))
	for i := range jm.Glyphs {
		jg := &jm.Glyphs[i]
		if _, dup := byName[jg.Name]; dup {
			return nil, fmt.Errorf("duplicate glyph %q", jg.Name)
		}
		byName[jg.Name] = jg
	}

	resolved := make(map[string][]kern.BezPath, len(jm.Glyphs))
	var resolve func(name string, active []string) ([]kern.BezPath, error)
	resolve = func(name string, active []string) ([]kern.BezPath, error) {
		if cs, ok := resolved[name]; ok {
			return cs, nil
		}
		for _, a := range active {
			if a == name {
				return nil, fmt.Errorf("component cycle %s → %s", strings.Join(active, " → "), name)
			}
		}
		jg, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("component refers to missing glyph %q", name)
		}
		var contours []kern.BezPath
		for i, pts := range jg.Contours {
			c, err := contourFromPoints(pts)
			if err != nil {
				return nil, fmt.Errorf("glyph %q, contour %d: %w", name, i, err)
			}
			if c != nil {
				contours = append(contours, c)
			}
		}
		for _, comp := range jg.Components {
			base, err := resolve(comp.Glyph, append(active[:len(active):len(active)], name))
			if err != nil {
				return nil, err
			}
			aff := kern.Identity
			if comp.Transform != nil {
				aff = kern.NewAffine(*comp.Transform)
			}
			if aff.IsNaN() || aff.IsInf() || aff.Determinant() == 0 {
				return nil, fmt.Errorf("glyph %q: degenerate transform %v for component %q", name, aff.Coefficients(), comp.Glyph)
			}
			for _, c := range base {
				contours = append(contours, c.Transform(aff))
			}
		}
		resolved[name] = contours
		return contours, nil
	}

	m := kern.NewMaster(jm.Name)
	for _, jg := range jm.Glyphs {
		contours, err := resolve(jg.Name, nil)
		if err != nil {
			return nil, err
		}
		g := &kern.Glyph{
			Name:     jg.Name,
			Advance:  jg.Advance,
			Contours: contours,
		}
		for _, a := range jg.Anchors {
			g.Anchors = append(g.Anchors, kern.Anchor{Name: a.Name, Pos: kern.Pt(a.X, a.Y)})
		}
		m.AddGlyph(g)
	}
	return m, nil
}

// contourFromPoints converts a closed UFO-style point list into a contour. An empty
// list yields nil.
func contourFromPoints(pts []jsonPoint) (kern.BezPath, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	pt := func(p jsonPoint) kern.Point { return kern.Pt(p.X, p.Y) }

	start := -1
	for i, p := range pts {
		if p.Type != "" {
			start = i
			break
		}
	}
	var c kern.BezPath
	if start < 0 {
		// Only quadratic off-curve points: every on-curve point is implied.
		n := len(pts)
		c.MoveTo(pt(pts[n-1]).Midpoint(pt(pts[0])))
		for i := range n {
			next := pt(pts[(i+1)%n])
			c.QuadTo(pt(pts[i]), pt(pts[i]).Midpoint(next))
		}
		c.ClosePath()
		return c, nil
	}

	c.MoveTo(pt(pts[start]))
	var offs []kern.Point
	for k := 1; k <= len(pts); k++ {
		p := pts[(start+k)%len(pts)]
		if p.Type == "" {
			offs = append(offs, pt(p))
			continue
		}
		on := pt(p)
		switch {
		case len(offs) == 0:
			c.LineTo(on)
		case p.Type == "qcurve" || (p.Type == "curve" && len(offs) == 1):
			for i := 0; i < len(offs)-1; i++ {
				c.QuadTo(offs[i], offs[i].Midpoint(offs[i+1]))
			}
			c.QuadTo(offs[len(offs)-1], on)
		case p.Type == "curve" && len(offs) == 2:
			c.CubicTo(offs[0], offs[1], on)
		default:
			return nil, fmt.Errorf("%d off-curve points before %q point", len(offs), p.Type)
		}
		offs = offs[:0]
	}
	c.ClosePath()
	return c, nil
}
