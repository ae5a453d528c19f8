package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/lcdfont"
)

// GlyphMask implements lcdfont.PixelSource. It renders r into a coverage
// mask of exactly req.Width x req.Height, placed by req.Align.
//
// Characters without a glyph are drawn as whatever the font maps them to
// (usually .notdef); no special casing is done.
func (l *Library) GlyphMask(r rune, req lcdfont.GlyphRequest) (*image.Alpha, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: block %dx%d", ErrInvalidSize, req.Width, req.Height)
	}
	if req.Font.Size <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ErrInvalidSize, req.Font.Size)
	}

	m, err := l.Lookup(req.Font.Family, req.Font.Style)
	if err != nil {
		return nil, err
	}
	entry, err := l.face(m.Source, req.Font.Size, mapHinting(req.Antialias))
	if err != nil {
		return nil, err
	}

	mask := image.NewAlpha(image.Rect(0, 0, req.Width, req.Height))
	baseline := drawAligned(entry, mask, r, req.Align)

	if m.FauxItalic {
		shearMask(mask, baseline)
	}
	if m.FauxBold {
		emboldenMask(mask)
	}
	if req.Antialias == lcdfont.AntialiasPixel {
		thresholdMask(mask)
	}
	return mask, nil
}

// drawAligned draws r into mask at the position selected by align and
// returns the baseline row.
func drawAligned(entry *faceEntry, mask *image.Alpha, r rune, align lcdfont.Alignment) int {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	face := entry.face
	w := fixed.I(mask.Bounds().Dx())
	h := fixed.I(mask.Bounds().Dy())

	advance, _ := face.GlyphAdvance(r)
	metrics := face.Metrics()

	var dot fixed.Point26_6
	switch align.H {
	case lcdfont.AlignCenter:
		dot.X = (w - advance) / 2
	case lcdfont.AlignRight:
		dot.X = w - advance
	}
	switch align.V {
	case lcdfont.AlignTop:
		dot.Y = metrics.Ascent
	case lcdfont.AlignMiddle:
		dot.Y = (h-(metrics.Ascent+metrics.Descent))/2 + metrics.Ascent
	default:
		dot.Y = h - metrics.Descent
	}
	dot.X = fixed.I(dot.X.Round())
	dot.Y = fixed.I(dot.Y.Round())

	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(string(r))
	return dot.Y.Round()
}

// mapHinting converts an antialias mode to font hinting.
func mapHinting(a lcdfont.Antialias) font.Hinting {
	switch a {
	case lcdfont.AntialiasTrueType:
		return font.HintingNone
	default:
		return font.HintingFull
	}
}
