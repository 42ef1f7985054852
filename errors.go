package kern

import "errors"

var (
	// ErrFontLoad is matched by every [FontLoadError].
	ErrFontLoad = errors.New("kern: cannot load font")
	// ErrMasterNotFound is returned when a query names a master the font doesn't have.
	ErrMasterNotFound = errors.New("kern: master not found")
	// ErrGlyphNotFound is returned when a query names a glyph the master doesn't have.
	ErrGlyphNotFound = errors.New("kern: glyph not found")
	// ErrEmptyOutline is returned when either glyph has no contours, so that the
	// distance between the glyphs is undefined.
	ErrEmptyOutline = errors.New("kern: glyph has no contours")
	// ErrNoSolution is returned when no horizontal offset, however large, brings the
	// outlines within the target distance.
	ErrNoSolution = errors.New("kern: target distance is unreachable")
	// ErrInvalidQuery is returned for queries with NaN or infinite arguments or a
	// negative maximum tuck.
	ErrInvalidQuery = errors.New("kern: invalid query")
)

// FontLoadError is returned by [NewDeterminer] when the font source cannot be
// loaded. It matches [ErrFontLoad] with [errors.Is].
type FontLoadError struct {
	// Source describes where the font was loaded from, if known.
	Source string
	Err    error
}

func (err *FontLoadError) Error() string {
	msg := ErrFontLoad.Error()
	if err.Source != "" {
		msg += " " + err.Source
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *FontLoadError) Unwrap() error {
	return err.Err
}

func (err *FontLoadError) Is(target error) bool {
	return target == ErrFontLoad
}
