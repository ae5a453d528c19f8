package lcdfont

import (
	"image"
	"image/color"
	"iter"
)

// Lines returns an iterator over the scan lines of img.
// ScanRow yields one slice per row (left to right), ScanColumn one slice
// per column (top to bottom). Every pixel is visited exactly once.
//
// The yielded slice is reused between iterations; copy it to retain it.
// Unknown scan modes yield nothing.
func Lines(img image.Image, mode ScanMode) iter.Seq[[]color.Color] {
	return func(yield func([]color.Color) bool) {
		b := img.Bounds()
		switch mode {
		case ScanRow:
			line := make([]color.Color, b.Dx())
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					line[x-b.Min.X] = img.At(x, y)
				}
				if !yield(line) {
					return
				}
			}
		case ScanColumn:
			line := make([]color.Color, b.Dy())
			for x := b.Min.X; x < b.Max.X; x++ {
				for y := b.Min.Y; y < b.Max.Y; y++ {
					line[y-b.Min.Y] = img.At(x, y)
				}
				if !yield(line) {
					return
				}
			}
		}
	}
}
