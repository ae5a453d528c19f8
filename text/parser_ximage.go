package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ParseCollection implements FontParser.ParseCollection.
func (p *ximageParser) ParseCollection(data []byte) ([]ParsedFont, error) {
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}

	fonts := make([]ParsedFont, 0, c.NumFonts())
	for i := range c.NumFonts() {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("text: failed to read font %d of collection: %w", i, err)
		}
		fonts = append(fonts, &ximageParsedFont{font: f})
	}
	return fonts, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// name returns the first non-empty name among ids.
func (f *ximageParsedFont) name(ids ...sfnt.NameID) string {
	var buf sfnt.Buffer
	for _, id := range ids {
		if s, err := f.font.Name(&buf, id); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// Family implements ParsedFont.Family.
func (f *ximageParsedFont) Family() string {
	return f.name(sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
}

// Subfamily implements ParsedFont.Subfamily.
func (f *ximageParsedFont) Subfamily() string {
	return f.name(sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// NewFace implements ParsedFont.NewFace.
func (f *ximageParsedFont) NewFace(size float64, hinting font.Hinting) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}
