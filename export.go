package lcdfont

import (
	"context"
	"image"

	"github.com/gogpu/lcdfont/internal/parallel"
)

// Glyph is the packed byte stream of one character.
type Glyph struct {
	Char rune
	Data []byte
}

// Export rasterizes and packs every character of s.Chars in sequence
// order. Settings are validated before any glyph is produced.
func Export(ctx context.Context, r *Rasterizer, s *FontSettings, codec *Codec) ([]Glyph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	glyphs := make([]Glyph, len(s.Chars))
	block := image.NewRGBA(image.Rect(0, 0, s.BlockWidth, s.BlockHeight))
	size := codec.BlockSize(s.BlockWidth, s.BlockHeight)

	for i, ch := range s.Chars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.RasterizeInto(block, s, ch); err != nil {
			return nil, err
		}
		glyphs[i] = Glyph{Char: ch, Data: codec.AppendBlock(make([]byte, 0, size), block)}
	}

	Logger().Info("lcdfont: exported glyphs",
		"count", len(glyphs), "color", codec.ColorMode(), "scan", codec.ScanMode(),
		"block", image.Pt(s.BlockWidth, s.BlockHeight))
	return glyphs, nil
}

// ExportParallel is Export spread over a worker pool. Each job owns its
// block, so the PixelSource must be safe for concurrent use. The result
// order matches s.Chars. If workers <= 0, GOMAXPROCS is used.
func ExportParallel(ctx context.Context, r *Rasterizer, s *FontSettings, codec *Codec, workers int) ([]Glyph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	glyphs := make([]Glyph, len(s.Chars))
	errs := make([]error, len(s.Chars))
	size := codec.BlockSize(s.BlockWidth, s.BlockHeight)

	work := make([]func(), len(s.Chars))
	for i, ch := range s.Chars {
		work[i] = func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			block, err := r.Rasterize(s, ch)
			if err != nil {
				errs[i] = err
				return
			}
			glyphs[i] = Glyph{Char: ch, Data: codec.AppendBlock(make([]byte, 0, size), block)}
		}
	}
	pool.ExecuteAll(work)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	Logger().Info("lcdfont: exported glyphs",
		"count", len(glyphs), "color", codec.ColorMode(), "scan", codec.ScanMode(),
		"workers", pool.Workers())
	return glyphs, nil
}

// Concat joins the glyph streams in order into one font resource.
func Concat(glyphs []Glyph) []byte {
	n := 0
	for _, g := range glyphs {
		n += len(g.Data)
	}
	out := make([]byte, 0, n)
	for _, g := range glyphs {
		out = append(out, g.Data...)
	}
	return out
}
