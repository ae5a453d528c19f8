package text

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/lcdfont"
)

// Coverage answers glyph presence queries for one font source using the
// cmap parsed by go-text/typesetting.
//
// Coverage is safe for concurrent use: font.Font is read-only.
type Coverage struct {
	font *font.Font
}

// Coverage returns the glyph coverage of s, parsing it on first use.
func (s *FontSource) Coverage() (*Coverage, error) {
	s.copyCheck()
	s.coverageOnce.Do(func() {
		faces, err := font.ParseTTC(bytes.NewReader(s.data))
		if err != nil {
			s.coverageErr = fmt.Errorf("text: coverage of %s: %w", s, err)
			return
		}
		if s.index >= len(faces) {
			s.coverageErr = fmt.Errorf("text: coverage of %s: collection has %d fonts", s, len(faces))
			return
		}
		s.coverage = &Coverage{font: faces[s.index].Font}
	})
	return s.coverage, s.coverageErr
}

// HasGlyph reports whether the font maps r to a glyph.
func (c *Coverage) HasGlyph(r rune) bool {
	_, ok := c.font.NominalGlyph(r)
	return ok
}

// Missing returns the runes of chars that have no glyph, in order.
func (c *Coverage) Missing(chars []rune) []rune {
	var missing []rune
	for _, r := range chars {
		if !c.HasGlyph(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// Missing returns the runes of chars that the face selected for f cannot
// draw. Control characters are never reported.
func (l *Library) Missing(f lcdfont.Font, chars []rune) ([]rune, error) {
	m, err := l.Lookup(f.Family, f.Style)
	if err != nil {
		return nil, err
	}
	c, err := m.Source.Coverage()
	if err != nil {
		return nil, err
	}
	var missing []rune
	for _, r := range c.Missing(chars) {
		if !unicode.IsControl(r) {
			missing = append(missing, r)
		}
	}
	return missing, nil
}
