package text

import (
	"image"
)

// fauxItalicSlant is the horizontal shift per pixel of height.
const fauxItalicSlant = 0.2

// emboldenMask widens every stroke one pixel to the right.
func emboldenMask(m *image.Alpha) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[(y-b.Min.Y)*m.Stride : (y-b.Min.Y)*m.Stride+b.Dx()]
		// Walk right to left so each pixel reads its original left neighbour.
		for x := len(row) - 1; x > 0; x-- {
			if row[x-1] > row[x] {
				row[x] = row[x-1]
			}
		}
	}
}

// shearMask slants the mask to the right around baseline. Rows above the
// baseline move right, rows below move left.
func shearMask(m *image.Alpha, baseline int) {
	b := m.Bounds()
	w := b.Dx()
	tmp := make([]uint8, w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		shift := int(float64(baseline-y)*fauxItalicSlant + 0.5)
		if baseline-y < 0 {
			shift = -int(float64(y-baseline)*fauxItalicSlant + 0.5)
		}
		if shift == 0 {
			continue
		}
		row := m.Pix[(y-b.Min.Y)*m.Stride : (y-b.Min.Y)*m.Stride+w]
		clear(tmp)
		for x, v := range row {
			if nx := x + shift; nx >= 0 && nx < w {
				tmp[nx] = v
			}
		}
		copy(row, tmp)
	}
}

// thresholdMask turns coverage into hard 0/0xff pixels.
func thresholdMask(m *image.Alpha) {
	for i, v := range m.Pix {
		if v >= 0x80 {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0
		}
	}
}
