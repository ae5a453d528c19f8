package text

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"

	"github.com/gogpu/lcdfont"
)

func goRequest(size float64) lcdfont.GlyphRequest {
	return lcdfont.GlyphRequest{
		Font:   lcdfont.Font{Family: "Go", Size: size},
		Align:  lcdfont.Alignment{H: lcdfont.AlignCenter, V: lcdfont.AlignMiddle},
		Width:  16,
		Height: 16,
	}
}

// inkBounds returns the bounding box of non-zero coverage.
func inkBounds(m *image.Alpha) image.Rectangle {
	var r image.Rectangle
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.AlphaAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func inkCount(m *image.Alpha) int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestGlyphMask(t *testing.T) {
	lib := newTestLibrary(t)

	space, err := lib.GlyphMask(' ', goRequest(12))
	if err != nil {
		t.Fatal(err)
	}
	if space.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("bounds = %v", space.Bounds())
	}
	if n := inkCount(space); n != 0 {
		t.Errorf("space has %d inked pixels", n)
	}

	a, err := lib.GlyphMask('A', goRequest(12))
	if err != nil {
		t.Fatal(err)
	}
	if inkCount(a) == 0 {
		t.Error("'A' has no ink")
	}

	req := goRequest(12)
	req.Width, req.Height = 24, 10
	wide, err := lib.GlyphMask('W', req)
	if err != nil {
		t.Fatal(err)
	}
	if wide.Bounds() != image.Rect(0, 0, 24, 10) {
		t.Errorf("bounds = %v, want 24x10", wide.Bounds())
	}
}

func TestGlyphMaskPixelAntialias(t *testing.T) {
	lib := newTestLibrary(t)
	req := goRequest(12)
	req.Antialias = lcdfont.AntialiasPixel

	m, err := lib.GlyphMask('g', req)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range m.Pix {
		if v != 0 && v != 0xff {
			t.Fatalf("pixel %d = %#x, want 0 or 0xff", i, v)
		}
	}
}

func TestGlyphMaskAlignment(t *testing.T) {
	lib := newTestLibrary(t)

	at := func(h lcdfont.HAlign, v lcdfont.VAlign) image.Rectangle {
		req := goRequest(8)
		req.Align = lcdfont.Alignment{H: h, V: v}
		m, err := lib.GlyphMask('o', req)
		if err != nil {
			t.Fatal(err)
		}
		return inkBounds(m)
	}

	left := at(lcdfont.AlignLeft, lcdfont.AlignMiddle)
	center := at(lcdfont.AlignCenter, lcdfont.AlignMiddle)
	right := at(lcdfont.AlignRight, lcdfont.AlignMiddle)
	if !(left.Min.X < center.Min.X && center.Min.X < right.Min.X) {
		t.Errorf("horizontal order: left %v, center %v, right %v", left, center, right)
	}

	top := at(lcdfont.AlignCenter, lcdfont.AlignTop)
	bottom := at(lcdfont.AlignCenter, lcdfont.AlignBottom)
	if !(top.Min.Y < center.Min.Y && center.Min.Y < bottom.Min.Y) {
		t.Errorf("vertical order: top %v, middle %v, bottom %v", top, center, bottom)
	}
}

func TestGlyphMaskFauxStyles(t *testing.T) {
	lib := newTestLibrary(t, WithSources(monoSource(t)))

	render := func(style lcdfont.Style) *image.Alpha {
		req := goRequest(12)
		req.Font = lcdfont.Font{Family: "Go Mono", Size: 12, Style: style}
		m, err := lib.GlyphMask('l', req)
		if err != nil {
			t.Fatal(err)
		}
		return m
	}

	regular := render(lcdfont.StyleRegular)
	bold := render(lcdfont.StyleBold)
	italic := render(lcdfont.StyleItalic)

	if inkCount(bold) <= inkCount(regular) {
		t.Errorf("faux bold ink %d <= regular %d", inkCount(bold), inkCount(regular))
	}
	if bytes.Equal(italic.Pix, regular.Pix) {
		t.Error("faux italic did not slant the glyph")
	}
}

func TestGlyphMaskErrors(t *testing.T) {
	lib := newTestLibrary(t)

	req := goRequest(0)
	if _, err := lib.GlyphMask('A', req); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero size: err = %v", err)
	}

	req = goRequest(12)
	req.Width = 0
	if _, err := lib.GlyphMask('A', req); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: err = %v", err)
	}

	req = goRequest(12)
	req.Font.Family = "Missing Family"
	if _, err := lib.GlyphMask('A', req); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("missing family: err = %v", err)
	}
}

func TestMapHinting(t *testing.T) {
	tests := []struct {
		a    lcdfont.Antialias
		want font.Hinting
	}{
		{lcdfont.AntialiasSystem, font.HintingFull},
		{lcdfont.AntialiasTrueType, font.HintingNone},
		{lcdfont.AntialiasClearType, font.HintingFull},
		{lcdfont.AntialiasPixel, font.HintingFull},
	}
	for _, tt := range tests {
		if got := mapHinting(tt.a); got != tt.want {
			t.Errorf("mapHinting(%v) = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestExportWithLibrary(t *testing.T) {
	lib := newTestLibrary(t)
	s := lcdfont.DefaultFontSettings()
	s.Chars = []rune(" A")

	codec, err := lcdfont.NewCodec(lcdfont.ColorMono, lcdfont.ScanRow)
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := lcdfont.ExportParallel(context.Background(), lcdfont.NewRasterizer(lib), &s, codec, 2)
	if err != nil {
		t.Fatalf("ExportParallel: %v", err)
	}
	if len(glyphs) != 2 || len(glyphs[0].Data) != 32 {
		t.Fatalf("glyphs = %d, size %d", len(glyphs), len(glyphs[0].Data))
	}

	// White on black: the space is all background, i.e. all set bits.
	for _, b := range glyphs[0].Data {
		if b != 0xFF {
			t.Fatalf("space data = % X", glyphs[0].Data)
		}
	}
	cleared := 0
	for _, b := range glyphs[1].Data {
		if b != 0xFF {
			cleared++
		}
	}
	if cleared == 0 {
		t.Error("'A' produced no foreground bits")
	}
}
