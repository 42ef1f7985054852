// Package fontsource loads fonts for package kern.
//
// Supported are OpenType and TrueType fonts (.otf, .ttf), font collections (.ttc,
// .otc), where every font of the collection becomes a master, and a JSON format for
// multi-master sources (.json). Binary fonts have a single master, named after the
// font's subfamily, such as "Regular" or "Bold".
//
// # JSON sources
//
// A JSON source lists masters, each holding glyphs with an advance width, contours,
// components and anchors, all in design units with y pointing up:
//
//	{
//	  "name": "Example",
//	  "unitsPerEm": 1000,
//	  "masters": [{
//	    "name": "Regular",
//	    "glyphs": [{
//	      "name": "o",
//	      "advance": 500,
//	      "contours": [[{"x": 0, "y": 0, "type": "line"}, ...]],
//	      "components": [{"glyph": "dot", "transform": [1, 0, 0, 1, 200, 600]}],
//	      "anchors": [{"name": "exit", "x": 500, "y": 20}]
//	    }]
//	  }]
//	}
//
// Contours are closed lists of points in the style of UFO glyphs. On-curve points
// have a type of "move", "line", "curve" (preceded by up to two cubic off-curve
// points) or "qcurve" (preceded by any number of quadratic off-curve points, with
// implied on-curve points in between); off-curve points have no type. A contour of
// off-curve points only is a TrueType-style closed quadratic spline. Components are
// decomposed when the font is loaded; the transform is (xx, xy, yx, yy, dx, dy).
package fontsource

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/kern"
)

// Format identifies a font source format.
type Format int

const (
	// FormatAuto detects the format from the file name and contents.
	FormatAuto Format = iota
	FormatSFNT
	FormatCollection
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatSFNT:
		return "sfnt"
	case FormatCollection:
		return "collection"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FileSource loads a font from a file. It implements [kern.Source].
type FileSource struct {
	Path   string
	Format Format
}

// File returns a source for the font file at path, with the format detected
// automatically.
func File(path string) FileSource {
	return FileSource{Path: path}
}

func (s FileSource) String() string { return s.Path }

// Load implements [kern.Source].
func (s FileSource) Load() (*kern.Font, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return Parse(data, s.format(data))
}

func (s FileSource) format(data []byte) Format {
	if s.Format != FormatAuto {
		return s.Format
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".otf", ".ttf":
		return FormatSFNT
	case ".ttc", ".otc":
		return FormatCollection
	case ".json":
		return FormatJSON
	}
	return Detect(data)
}

// BytesSource loads a font from memory. It implements [kern.Source].
type BytesSource struct {
	Name   string
	Data   []byte
	Format Format
}

// Bytes returns a source for the font data, with the format detected from the
// contents. The name is only used in error messages.
func Bytes(name string, data []byte) BytesSource {
	return BytesSource{Name: name, Data: data}
}

func (s BytesSource) String() string { return s.Name }

// Load implements [kern.Source].
func (s BytesSource) Load() (*kern.Font, error) {
	return Parse(s.Data, s.Format)
}

// Detect guesses the format of font data from its first bytes.
func Detect(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(data, []byte("ttcf")):
		return FormatCollection
	case len(trimmed) > 0 && trimmed[0] == '{':
		return FormatJSON
	default:
		return FormatSFNT
	}
}

// Parse reads font data in the given format. OpenType and TrueType fonts the primary
// parser rejects are retried with a second, independent parser.
func Parse(data []byte, format Format) (*kern.Font, error) {
	if format == FormatAuto {
		format = Detect(data)
	}
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatCollection:
		return parseCollection(data)
	case FormatSFNT:
		f, err := parseSFNT(data)
		if err == nil {
			return f, nil
		}
		kern.Logger().Warn("retrying font with fallback parser", "error", err)
		f, err2 := parseXImage(data)
		if err2 != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported font format %s", format)
	}
}
