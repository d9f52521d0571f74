// Package textmeasure provides exact text measurement for schem label
// bounding boxes, backed by real font files.
//
// Load a font once into a Source, build a Measurer, and install it:
//
//	src, err := textmeasure.NewSourceFromFile("DejaVuSans.ttf")
//	if err != nil { ... }
//	schem.SetTextMeasurer(textmeasure.NewMeasurer(src))
//
// Without an installed measurer, schem falls back to an approximate
// Helvetica width table, which is adequate for layout but not exact.
package textmeasure
