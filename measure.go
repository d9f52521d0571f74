package schem

import "strings"

// approxMeasurer estimates text extents from a Helvetica advance-width
// table, so that bounding boxes work without loading a font file. The
// textmeasure package provides an exact, font-backed replacement;
// install it with SetTextMeasurer.
type approxMeasurer struct{}

// Helvetica glyph advances for ASCII 32..126 in 1/1000 em units.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278,
	333, 278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556,
	278, 278, 584, 584, 584, 556, 1015, 667, 667, 722, 722, 667, 611,
	778, 722, 278, 500, 667, 556, 833, 722, 778, 667, 778, 722, 667,
	611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556, 333,
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833,
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500,
	334, 260, 334, 584,
}

// Approximate Helvetica vertical metrics in em units.
const (
	approxAscent   = 0.905
	approxDescent  = 0.212
	approxLineStep = 1.2
)

// Measure implements TextMeasurer. Extents are in typographic points.
// Multi-line strings measure as the widest line and the stacked line
// heights.
func (approxMeasurer) Measure(text, font string, size float64) (w, h float64) {
	_ = font // single built-in width table
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		lw := 0.0
		for _, r := range line {
			if r >= 32 && r <= 126 {
				lw += float64(helveticaWidths[r-32])
			} else {
				lw += 600
			}
		}
		lw = lw / 1000 * size
		if lw > w {
			w = lw
		}
	}
	h = size * (approxAscent + approxDescent)
	if n := len(lines); n > 1 {
		h += size * approxLineStep * float64(n-1)
	}
	return w, h
}
