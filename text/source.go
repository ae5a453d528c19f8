package text

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gogpu/lcdfont"
)

// FontSource represents one parsed font: a TTF/OTF file or one member of
// a TTC collection.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	index  int
	parsed ParsedFont

	family    string
	subfamily string
	style     lcdfont.Style
	path      string

	coverageOnce sync.Once
	coverage     *Coverage
	coverageErr  error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// For collections the first member is used; see NewFontSources.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	sources, err := NewFontSources(data, opts...)
	if err != nil {
		return nil, err
	}
	return sources[0], nil
}

// NewFontSources creates one FontSource per member of a font collection.
// Single fonts yield a one-element slice.
func NewFontSources(data []byte, opts ...SourceOption) ([]*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	sources := make([]*FontSource, len(parsed))
	for i, p := range parsed {
		s := &FontSource{
			data:      dataCopy,
			index:     i,
			parsed:    p,
			family:    extractFamily(p),
			subfamily: p.Subfamily(),
			path:      config.path,
		}
		s.style = styleFromSubfamily(s.subfamily)
		s.addr = s
		sources[i] = s
	}
	return sources, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, append(opts, withPath(path))...)
}

// Family returns the font family name.
func (s *FontSource) Family() string {
	s.copyCheck()
	return s.family
}

// Subfamily returns the style name recorded in the font.
func (s *FontSource) Subfamily() string {
	s.copyCheck()
	return s.subfamily
}

// Style returns the style derived from the subfamily name.
func (s *FontSource) Style() lcdfont.Style {
	s.copyCheck()
	return s.style
}

// Path returns the file the source was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	s.copyCheck()
	return s.path
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// String returns "Family (Subfamily)".
func (s *FontSource) String() string {
	if s.subfamily == "" {
		return s.family
	}
	return s.family + " (" + s.subfamily + ")"
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFamily returns the family name, falling back to the full name.
func extractFamily(parsed ParsedFont) string {
	if name := parsed.Family(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

// styleFromSubfamily maps names like "Bold Oblique" to a Style.
func styleFromSubfamily(sub string) lcdfont.Style {
	sub = strings.ToLower(sub)
	bold := strings.Contains(sub, "bold") || strings.Contains(sub, "heavy") || strings.Contains(sub, "black")
	italic := strings.Contains(sub, "italic") || strings.Contains(sub, "oblique")
	switch {
	case bold && italic:
		return lcdfont.StyleBoldItalic
	case bold:
		return lcdfont.StyleBold
	case italic:
		return lcdfont.StyleItalic
	default:
		return lcdfont.StyleRegular
	}
}
