package kern

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type cacheKey struct {
	master string
	glyph  string
}

type cacheEntry struct {
	once    sync.Once
	outline *Outline
}

// outlineCache memoizes flattened outlines per (master, glyph). Each entry is built
// at most once, even under concurrent access; finished entries are read without
// taking a lock. Entries are never evicted because the font is immutable.
type outlineCache struct {
	font    *Font
	entries sync.Map // cacheKey → *cacheEntry
	builds  atomic.Int64
}

func newOutlineCache(font *Font) *outlineCache {
	return &outlineCache{font: font}
}

// lookup resolves a glyph by name without touching the cache.
func (c *outlineCache) lookup(glyphName, masterName string) (*Master, *Glyph, error) {
	m, ok := c.font.Master(masterName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrMasterNotFound, masterName)
	}
	g, ok := m.Glyph(glyphName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q in master %q", ErrGlyphNotFound, glyphName, masterName)
	}
	return m, g, nil
}

// getOrBuild returns the flattened outline of the named glyph together with the glyph
// itself. Unknown names are reported before any cache entry is created.
func (c *outlineCache) getOrBuild(glyphName, masterName string) (*Outline, *Glyph, error) {
	m, g, err := c.lookup(glyphName, masterName)
	if err != nil {
		return nil, nil, err
	}
	key := cacheKey{master: m.Name, glyph: g.Name}
	v, ok := c.entries.Load(key)
	if !ok {
		v, _ = c.entries.LoadOrStore(key, new(cacheEntry))
	}
	e := v.(*cacheEntry)
	e.once.Do(func() {
		e.outline = FlattenGlyph(g)
		c.builds.Add(1)
		Logger().Debug("flattened glyph",
			"glyph", g.Name,
			"master", m.Name,
			"contours", len(e.outline.contours),
			"segments", e.outline.NumSegments())
	})
	return e.outline, g, nil
}
