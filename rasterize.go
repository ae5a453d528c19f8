package lcdfont

import (
	"fmt"
	"image"
	"image/draw"
)

// GlyphRequest describes the coverage mask a PixelSource must produce.
type GlyphRequest struct {
	Font      Font
	Antialias Antialias
	Align     Alignment

	// Width and Height are the block size; the returned mask must have
	// bounds (0, 0, Width, Height).
	Width  int
	Height int
}

// PixelSource renders single characters into coverage masks.
//
// Implementations must return a full-size mask even when the font has no
// glyph for r (blank or fallback glyph). Implementations used with
// ExportParallel must be safe for concurrent use.
type PixelSource interface {
	GlyphMask(r rune, req GlyphRequest) (*image.Alpha, error)
}

// Rasterizer fills glyph blocks using a PixelSource.
type Rasterizer struct {
	src PixelSource
}

// NewRasterizer creates a Rasterizer backed by src.
func NewRasterizer(src PixelSource) *Rasterizer {
	return &Rasterizer{src: src}
}

// Rasterize returns a new BlockWidth x BlockHeight block holding ch drawn
// in the settings' colors, alignment and offset.
func (r *Rasterizer) Rasterize(s *FontSettings, ch rune) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, s.BlockWidth, s.BlockHeight))
	if err := r.RasterizeInto(dst, s, ch); err != nil {
		return nil, err
	}
	return dst, nil
}

// RasterizeInto draws ch into dst, which must be block-sized.
// The block is cleared to the background first, so dst can be reused
// between characters.
func (r *Rasterizer) RasterizeInto(dst *image.RGBA, s *FontSettings, ch rune) error {
	if r == nil || r.src == nil {
		return ErrNoPixelSource
	}
	if err := s.Validate(); err != nil {
		return err
	}

	block := image.Rect(0, 0, s.BlockWidth, s.BlockHeight)
	if dst.Bounds() != block {
		return fmt.Errorf("lcdfont: block bounds %v, want %v", dst.Bounds(), block)
	}

	draw.Draw(dst, block, image.NewUniform(s.Background), image.Point{}, draw.Src)

	mask, err := r.src.GlyphMask(ch, GlyphRequest{
		Font:      s.Font,
		Antialias: s.Antialias,
		Align:     s.Align,
		Width:     s.BlockWidth,
		Height:    s.BlockHeight,
	})
	if err != nil {
		return fmt.Errorf("lcdfont: rasterize %q: %w", ch, err)
	}
	if mask == nil {
		return nil
	}

	// The mask is placed at the glyph offset and clipped to the block.
	offset := image.Pt(s.OffsetX, s.OffsetY)
	target := mask.Bounds().Add(offset).Intersect(block)
	if target.Empty() {
		return nil
	}
	draw.DrawMask(dst, target, image.NewUniform(s.Foreground), image.Point{},
		mask, target.Min.Sub(offset), draw.Over)
	return nil
}
