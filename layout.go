package lcdfont

import (
	"image/color"
)

// Columns is the fixed number of glyphs per grid row.
const Columns = 16

// Layout holds the preview geometry. The zero value is not useful;
// start from DefaultLayout.
//
// All Layout methods are pure functions of their arguments and may be
// called repeatedly while the user scrolls or resizes.
type Layout struct {
	// PaddingLeft is the width of the row-index gutter.
	PaddingLeft   int
	PaddingTop    int
	PaddingBottom int

	// BlockMargin is the gap between neighbouring blocks.
	BlockMargin int

	// ScrollStep is the number of pixels per scroll unit.
	ScrollStep int

	// LargeScrollRows is the number of grid rows per page scroll.
	LargeScrollRows int

	// Preview colors.
	ContentBackground color.Color
	RowIndexColor     color.Color
}

// DefaultLayout returns the standard preview geometry.
func DefaultLayout() Layout {
	return Layout{
		PaddingLeft:       45,
		PaddingTop:        3,
		PaddingBottom:     3,
		BlockMargin:       3,
		ScrollStep:        3,
		LargeScrollRows:   3,
		ContentBackground: color.NRGBA{0xf0, 0xf0, 0xf0, 0xff},
		RowIndexColor:     color.NRGBA{0x00, 0x00, 0x80, 0xff},
	}
}

// RowHeight returns the pixel pitch of one grid row.
func (l Layout) RowHeight(s *FontSettings) int {
	return s.BlockHeight + l.BlockMargin
}

// ColumnWidth returns the pixel pitch of one grid column.
func (l Layout) ColumnWidth(s *FontSettings) int {
	return s.BlockWidth + l.BlockMargin
}

// Rows returns the number of grid rows needed for the character sequence.
func (l Layout) Rows(s *FontSettings) int {
	return (len(s.Chars) + Columns - 1) / Columns
}

// ContentWidth returns the preview width: gutter plus 16 columns.
func (l Layout) ContentWidth(s *FontSettings) int {
	return l.PaddingLeft + Columns*l.ColumnWidth(s)
}

// workHeight returns the viewport height minus top and bottom padding.
func (l Layout) workHeight(viewportHeight int) int {
	return viewportHeight - l.PaddingTop - l.PaddingBottom
}

// ScrollMaximum returns the scroll range in scroll units for the whole
// grid. Content height is rounded up to a whole number of visible pages.
// The result is at least 1 so a scrollbar stays usable for empty content.
func (l Layout) ScrollMaximum(viewportHeight int, s *FontSettings) int {
	total := l.Rows(s) * l.RowHeight(s)
	if work := l.workHeight(viewportHeight); work > 0 {
		if rem := total % work; rem != 0 {
			total += work - rem
		}
	}
	steps := (total + l.ScrollStep) / l.ScrollStep
	return max(steps, 1)
}

// ScrollLargePage returns the page-scroll size in scroll units:
// LargeScrollRows grid rows, clamped to the visible work height.
func (l Layout) ScrollLargePage(s *FontSettings, viewportHeight int) int {
	page := l.LargeScrollRows * l.RowHeight(s)
	if work := l.workHeight(viewportHeight); page > work {
		page = work
	}
	return max(page, 0) / l.ScrollStep
}

// CharIndexAt maps a pointer position in the preview, under scrollOffset,
// to an index into s.Chars. It returns NoMatch for positions in the
// padding gutter, in a column >= 16, or past the end of the sequence.
func (l Layout) CharIndexAt(x, y, scrollOffset int, s *FontSettings) int {
	x -= l.PaddingLeft
	y = y - l.PaddingTop + scrollOffset*l.ScrollStep
	if x < 0 || y < 0 {
		return NoMatch
	}

	row := y / l.RowHeight(s)
	col := x / l.ColumnWidth(s)
	if col >= Columns {
		return NoMatch
	}

	idx := row*Columns + col
	if idx >= len(s.Chars) {
		return NoMatch
	}
	return idx
}
