package text

import (
	"golang.org/x/image/font"
)

// FontParser is an interface for font parsing backends.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)

	// ParseCollection parses a font collection (TTC), or a single font
	// as a one-element collection.
	ParseCollection(data []byte) ([]ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Family returns the font family name, preferring the typographic
	// family. Returns empty string if not available.
	Family() string

	// Subfamily returns the style name, e.g. "Bold Italic".
	Subfamily() string

	// FullName returns the full font name.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for a rune, 0 if missing.
	GlyphIndex(r rune) uint16

	// NewFace returns a rasterizing face at size pixels per em.
	// The returned face is not safe for concurrent use.
	NewFace(size float64, hinting font.Hinting) (font.Face, error)
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
