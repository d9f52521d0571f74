package textmeasure

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Measurer measures text through HarfBuzz shaping, so kerning and
// ligatures are reflected in the reported width. It implements
// schem.TextMeasurer.
//
// Measurer is safe for concurrent use: the parsed fonts are read-only
// and the shapers (which carry mutable buffers) are pooled.
type Measurer struct {
	def *Source

	mu      sync.RWMutex
	sources map[string]*Source

	// shaperPool pools HarfbuzzShaper instances; they are not safe
	// for concurrent use but cheap to reuse sequentially.
	shaperPool sync.Pool
}

// NewMeasurer builds a Measurer with def as the fallback font.
func NewMeasurer(def *Source) *Measurer {
	return &Measurer{
		def:     def,
		sources: make(map[string]*Source),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// AddFont registers a Source under a family name so segment styles can
// select it by their Font attribute.
func (m *Measurer) AddFont(family string, src *Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[family] = src
}

// sourceFor returns the Source registered under family, or the default.
func (m *Measurer) sourceFor(family string) *Source {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sources[family]; ok {
		return s
	}
	return m.def
}

// Measure implements schem.TextMeasurer. Extents are in typographic
// points. Multi-line text measures as the widest line and the stacked
// line heights.
func (m *Measurer) Measure(text, fontName string, size float64) (w, h float64) {
	src := m.sourceFor(fontName)
	if src == nil || text == "" {
		return 0, 0
	}

	// Normalize so composed and decomposed inputs measure alike.
	text = norm.NFC.String(text)

	lines := strings.Split(text, "\n")
	var lineHeight float64
	for _, line := range lines {
		lw, lh := m.measureLine(line, src, size)
		if lw > w {
			w = lw
		}
		if lh > lineHeight {
			lineHeight = lh
		}
	}
	h = lineHeight * float64(len(lines))
	return w, h
}

func (m *Measurer) measureLine(line string, src *Source, size float64) (w, h float64) {
	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(src.parsed),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	w = fixedToFloat(output.Advance)
	// LineBounds.Descent is negative (below baseline).
	h = fixedToFloat(output.LineBounds.Ascent) - fixedToFloat(output.LineBounds.Descent)
	return w, h
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script labels
// are rare in schematics.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
