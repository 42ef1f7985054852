package fontsource

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// runeName returns the name under which the glyph for r in Go Regular is loaded.
func runeName(t testing.TB, r rune) string {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		t.Fatalf("no glyph for %q: %v", r, err)
	}
	name, err := f.GlyphName(&buf, gid)
	if err != nil || name == "" {
		return fmt.Sprintf("glyph%05d", gid)
	}
	return name
}

// makeCollection packs fonts into a TrueType collection, fixing up the table offsets
// of every font.
func makeCollection(fonts ...[]byte) []byte {
	pad := func(n int) int { return (n + 3) &^ 3 }
	header := pad(12 + 4*len(fonts))
	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))
	for i, f := range fonts {
		base := len(out)
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(base))
		out = append(out, f...)
		out = append(out, make([]byte, pad(len(f))-len(f))...)

		numTables := int(binary.BigEndian.Uint16(f[4:]))
		for j := range numTables {
			rec := out[base+12+16*j:]
			off := binary.BigEndian.Uint32(rec[8:])
			binary.BigEndian.PutUint32(rec[8:], off+uint32(base))
		}
	}
	return out
}
