package lcdfont

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPreviewSize(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(32)

	img, err := l.Preview(300, &s, 0, NewRasterizer(solidSource()))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if want := image.Rect(0, 0, l.ContentWidth(&s), 300); img.Bounds() != want {
		t.Errorf("bounds = %v, want %v", img.Bounds(), want)
	}
}

func TestCompositeGrid(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(20)

	img, err := l.Preview(300, &s, 0, NewRasterizer(solidSource()))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		p    image.Point
		want color.Color
	}{
		{"first block", image.Pt(45, 3), color.Black},
		{"first block far corner", image.Pt(45+15, 3+15), color.Black},
		{"column margin", image.Pt(45+16, 3), l.ContentBackground},
		{"row margin", image.Pt(45, 3+16), l.ContentBackground},
		{"second row", image.Pt(45, 3+19), color.Black},
		{"after last char", image.Pt(45+4*19, 3+19), l.ContentBackground},
		{"third row", image.Pt(45, 3+2*19), l.ContentBackground},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.At(tt.p.X, tt.p.Y); !sameColor(got, tt.want) {
				t.Errorf("pixel %v = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCompositeRowLabel(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(16)

	img, err := l.Preview(100, &s, 0, NewRasterizer(solidSource()))
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for y := l.PaddingTop; y < l.PaddingTop+s.BlockHeight && !found; y++ {
		for x := 0; x < l.PaddingLeft; x++ {
			if sameColor(img.At(x, y), l.RowIndexColor) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no row index label drawn in the gutter")
	}
}

func TestCompositePaddingBlank(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(256)

	for _, scroll := range []int{0, 1, 5, 50} {
		img, err := l.Preview(120, &s, scroll, NewRasterizer(solidSource()))
		if err != nil {
			t.Fatal(err)
		}
		b := img.Bounds()
		for x := b.Min.X; x < b.Max.X; x++ {
			for _, y := range []int{0, 1, 2, 117, 118, 119} {
				if !sameColor(img.At(x, y), l.ContentBackground) {
					t.Fatalf("scroll %d: padding pixel (%d, %d) = %v", scroll, x, y, img.At(x, y))
				}
			}
		}
	}
}

func TestCompositeScrollCropsFirstRow(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(64)

	// scroll 2 hides 6 pixel rows of the first grid row, so the glyph's
	// bottom row lands at y = 3 + 15 - 6.
	img, err := l.Preview(200, &s, 2, NewRasterizer(lastRowSource(16)))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(45, 12); !sameColor(got, color.Black) {
		t.Errorf("cropped glyph row at y=12 = %v, want foreground", got)
	}
	if got := img.At(45, 3); !sameColor(got, color.White) {
		t.Errorf("y=3 = %v, want block background", got)
	}
	if got := img.At(45, 13); !sameColor(got, l.ContentBackground) {
		t.Errorf("y=13 = %v, want margin", got)
	}
	// The second row starts right after the margin.
	if got := img.At(45, 16); !sameColor(got, color.White) {
		t.Errorf("y=16 = %v, want second row background", got)
	}
	if got := img.At(45, 31); !sameColor(got, color.Black) {
		t.Errorf("y=31 = %v, want second row glyph", got)
	}
}

func TestCompositeClipsLastRow(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(64)

	// Work area ends at y=27; the second row starts at y=22.
	img, err := l.Preview(30, &s, 0, NewRasterizer(lastRowSource(16)))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(45, 26); !sameColor(got, color.White) {
		t.Errorf("y=26 = %v, want clipped block", got)
	}
	if got := img.At(45, 27); !sameColor(got, l.ContentBackground) {
		t.Errorf("y=27 = %v, want bottom padding", got)
	}
}

func TestCompositeClipsSingleRowInTallSurface(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(16)

	// The viewport ends at y=15 but dst is taller; the only row starts at
	// y=3 and must stop at the bottom padding (y=12).
	dst := image.NewRGBA(image.Rect(0, 0, l.ContentWidth(&s), 40))
	if err := l.Composite(dst, 15, &s, 0, NewRasterizer(lastRowSource(16))); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		y    int
		want color.Color
	}{
		{11, color.White},
		{12, l.ContentBackground},
		{16, l.ContentBackground},
		{18, l.ContentBackground},
	}
	for _, tt := range tests {
		if got := dst.At(45, tt.y); !sameColor(got, tt.want) {
			t.Errorf("y=%d = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestCompositeEmptyAndErrors(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")

	src := solidSource()
	if _, err := l.Preview(100, &s, 0, NewRasterizer(src)); err != nil {
		t.Fatalf("empty chars: %v", err)
	}
	if src.calls.Load() != 0 {
		t.Error("empty grid should not rasterize")
	}

	s.Chars = []rune("AB")
	if _, err := l.Preview(100, &s, 0, NewRasterizer(failingSource{on: 'B'})); !errors.Is(err, errGlyph) {
		t.Errorf("err = %v, want errGlyph", err)
	}

	s.BlockHeight = 2
	if _, err := l.Preview(100, &s, 0, NewRasterizer(src)); !errors.Is(err, ErrBlockTooSmall) {
		t.Errorf("err = %v, want ErrBlockTooSmall", err)
	}
}

func TestCompositeScrollPastEnd(t *testing.T) {
	l := DefaultLayout()
	s := blackOnWhite("")
	s.Chars = nChars(16)

	src := solidSource()
	img, err := l.Preview(100, &s, 100, NewRasterizer(src))
	if err != nil {
		t.Fatal(err)
	}
	if src.calls.Load() != 0 {
		t.Error("nothing visible should be rasterized")
	}
	if got := img.At(45, 10); !sameColor(got, l.ContentBackground) {
		t.Errorf("pixel = %v, want background", got)
	}
}

func TestZoomBlock(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.White)

	z := ZoomBlock(img, 4)
	if z.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("bounds = %v", z.Bounds())
	}
	if !sameColor(z.At(7, 3), color.White) || sameColor(z.At(3, 3), color.White) {
		t.Error("nearest-neighbour scaling misplaced pixels")
	}
	if ZoomBlock(img, 0).Bounds() != img.Bounds() {
		t.Error("scale below 1 should keep the size")
	}
}
