package lcdfont

import (
	"errors"
	"image"
	"image/color"
	"sync/atomic"
)

// maskSource is a PixelSource that fills a mask with fill(r, x, y).
type maskSource struct {
	fill  func(r rune, x, y int) bool
	calls atomic.Int64
}

func (s *maskSource) GlyphMask(r rune, req GlyphRequest) (*image.Alpha, error) {
	s.calls.Add(1)
	m := image.NewAlpha(image.Rect(0, 0, req.Width, req.Height))
	for y := 0; y < req.Height; y++ {
		for x := 0; x < req.Width; x++ {
			if s.fill(r, x, y) {
				m.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return m, nil
}

// solidSource covers the whole block.
func solidSource() *maskSource {
	return &maskSource{fill: func(rune, int, int) bool { return true }}
}

// columnSource covers one column per character, chosen by code point.
func columnSource(width int) *maskSource {
	return &maskSource{fill: func(r rune, x, _ int) bool { return x == int(r)%width }}
}

// lastRowSource covers only the bottom row of the block.
func lastRowSource(height int) *maskSource {
	return &maskSource{fill: func(_ rune, _, y int) bool { return y == height-1 }}
}

var errGlyph = errors.New("glyph failed")

type failingSource struct{ on rune }

func (s failingSource) GlyphMask(r rune, req GlyphRequest) (*image.Alpha, error) {
	if r == s.on {
		return nil, errGlyph
	}
	return image.NewAlpha(image.Rect(0, 0, req.Width, req.Height)), nil
}

// blackOnWhite returns 16x16 settings with a black foreground.
func blackOnWhite(chars string) FontSettings {
	s := DefaultFontSettings()
	s.Foreground = color.Black
	s.Background = color.White
	s.Chars = []rune(chars)
	return s
}

// nChars returns n distinct runes starting at U+4E00.
func nChars(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(0x4e00 + i)
	}
	return out
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
