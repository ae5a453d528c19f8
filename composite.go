package lcdfont

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rowLabelFace draws the hexadecimal row index in the gutter.
var rowLabelFace font.Face = basicfont.Face7x13

// Preview allocates a ContentWidth x viewportHeight surface and
// composites the grid into it.
func (l Layout) Preview(viewportHeight int, s *FontSettings, scrollOffset int, r *Rasterizer) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, l.ContentWidth(s), viewportHeight))
	if err := l.Composite(dst, viewportHeight, s, scrollOffset, r); err != nil {
		return nil, err
	}
	return dst, nil
}

// Composite draws the visible part of the glyph grid into dst.
//
// Rows start at the first row touched by scrollOffset. Each row gets a
// four-digit hex index label in the gutter, then up to 16 glyphs. The
// first row is cropped at its top edge by the scroll remainder and the
// last row at the bottom padding. Both padding strips are blanked at the
// end to remove partial label fragments.
func (l Layout) Composite(dst draw.Image, viewportHeight int, s *FontSettings, scrollOffset int, r *Rasterizer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	bounds := dst.Bounds()
	bg := image.NewUniform(l.ContentBackground)
	draw.Draw(dst, bounds, bg, image.Point{}, draw.Src)

	charIndex := l.CharIndexAt(l.PaddingLeft, l.PaddingTop, scrollOffset, s)
	if charIndex == NoMatch {
		l.blankPadding(dst, viewportHeight)
		return nil
	}

	rowHeight := l.RowHeight(s)
	columnWidth := l.ColumnWidth(s)
	bottom := viewportHeight - l.PaddingBottom
	rowOffset := (scrollOffset * l.ScrollStep) % rowHeight

	// block is the transient glyph buffer for this pass.
	block := image.NewRGBA(image.Rect(0, 0, s.BlockWidth, s.BlockHeight))

	// srcY/copyH select the part of the block copied for the current row;
	// each copy is also clipped at the bottom padding.
	srcY, copyH := min(rowOffset, s.BlockHeight), s.BlockHeight-min(rowOffset, s.BlockHeight)
	x, y := bounds.Min.X+l.PaddingLeft, bounds.Min.Y+l.PaddingTop
	labelY := y - rowOffset

	for y < bounds.Min.Y+bottom && charIndex < len(s.Chars) {
		l.drawRowLabel(dst, bounds.Min.X, labelY, s.BlockHeight, charIndex/Columns)

		for col := 0; col < Columns && charIndex < len(s.Chars); col++ {
			if err := r.RasterizeInto(block, s, s.Chars[charIndex]); err != nil {
				return err
			}
			if h := min(copyH, bounds.Min.Y+bottom-y); h > 0 {
				target := image.Rect(x, y, x+s.BlockWidth, y+h)
				draw.Draw(dst, target, block, image.Pt(0, srcY), draw.Src)
			}
			charIndex++
			x += columnWidth
		}

		x = bounds.Min.X + l.PaddingLeft
		if y == bounds.Min.Y+l.PaddingTop {
			y += rowHeight - rowOffset
			srcY, copyH = 0, s.BlockHeight
		} else {
			y += rowHeight
		}
		labelY += rowHeight
	}
	Logger().Debug("lcdfont: composite", "scroll", scrollOffset, "last", charIndex)

	l.blankPadding(dst, viewportHeight)
	return nil
}

// drawRowLabel draws the hex row index vertically centered on a block row
// whose top edge is at y.
func (l Layout) drawRowLabel(dst draw.Image, x, y, blockHeight, row int) {
	m := rowLabelFace.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := y + (blockHeight-(ascent+descent))/2 + ascent

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.RowIndexColor),
		Face: rowLabelFace,
		Dot:  fixed.P(x+1, baseline),
	}
	d.DrawString(fmt.Sprintf("%04X", row))
}

// blankPadding clears the top and bottom padding strips.
func (l Layout) blankPadding(dst draw.Image, viewportHeight int) {
	b := dst.Bounds()
	bg := image.NewUniform(l.ContentBackground)
	top := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+l.PaddingTop)
	bottom := image.Rect(b.Min.X, b.Min.Y+viewportHeight-l.PaddingBottom, b.Max.X, b.Min.Y+viewportHeight)
	draw.Draw(dst, top.Intersect(b), bg, image.Point{}, draw.Src)
	draw.Draw(dst, bottom.Intersect(b), bg, image.Point{}, draw.Src)
}

// ZoomBlock enlarges img by an integer factor with nearest-neighbour
// sampling, for glyph previews.
func ZoomBlock(img image.Image, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
