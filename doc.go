// Package kern computes kerning values from glyph geometry.
//
// Given two glyphs, kern finds the horizontal offset at which the closest points of
// their outlines are a requested distance apart. This is useful for scripts where
// spacing is dominated by how shapes nest into each other, such as cursive Arabic
// or Nastaliq, where fixed sidebearings work poorly.
//
// # Usage
//
// A [Determiner] owns one loaded font and answers any number of queries, possibly
// from many goroutines at once:
//
//	d, err := kern.NewDeterminer(fontsource.File("MyFont.otf"))
//	if err != nil {
//		return err
//	}
//	k, err := d.DetermineKern("beh-ar.init", "seen-ar.medi", "Regular", 150, 0, 0.65)
//
// # Geometry
//
// The left glyph sits at the origin, moved vertically by the query's height. The
// right glyph is placed at the left glyph's advance width plus the kern value.
// Outlines are flattened once per glyph and master (see [FlattenGlyph]) with a fixed
// tolerance of half a design unit, and distances are computed between the resulting
// polylines (see [Distance]). Overlapping outlines have distance zero.
//
// # Solving
//
// [Solve] samples the distance at evenly spaced kern values and bisects the last
// interval in which the distance crosses the target. The maximum tuck, a fraction of
// the left glyph's advance width, is a hard lower limit on the result, whereas the
// target distance is a goal that is given up when it would require more tuck.
//
// Distance as a function of the kern value is only guaranteed to be monotone once the
// outlines are in contact. For deeply concave outlines the sampling usually finds the
// right crossing, but more samples (see [WithProbes]) can be required.
package kern
