package textmeasure

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("textmeasure: empty font data")

// Source is a loaded, parsed font file. One Source measures at any
// size; it is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use after creation. The parsed
// font.Font is read-only; per-call font.Face instances are created as
// needed since those are not concurrency-safe.
type Source struct {
	data   []byte
	parsed *font.Font
	name   string
}

// NewSource parses TTF or OTF font data. The data slice is copied
// internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}

	s := &Source{data: dataCopy, parsed: face.Font}
	s.name = extractFamilyName(dataCopy)
	return s, nil
}

// extractFamilyName reads the family name table entry. Returns "" when
// the font does not expose one.
func extractFamilyName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textmeasure: read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name.
func (s *Source) Name() string { return s.name }

// Font returns the parsed, read-only font.
func (s *Source) Font() *font.Font { return s.parsed }
