package lcdfont

import (
	"image/color"
)

// blackThreshold is the 8-bit luma below which a pixel counts as black.
const blackThreshold = 0x80

// Luma returns the 8-bit grayscale intensity of c using the
// ITU-R 601 weights of color.GrayModel. Alpha is ignored: pixels are
// expected to be opaque after rasterizing over a background.
func Luma(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
	return uint8(y)
}

// IsBlackLikely reports whether c is dark enough to be encoded as a set
// bit in ColorMono.
func IsBlackLikely(c color.Color) bool {
	return Luma(c) < blackThreshold
}

// RGB565 returns the 5-6-5 encoding of c: (R>>3)<<11 | (G>>2)<<5 | B>>3.
func RGB565(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
}

// packFunc appends one packed scan line to dst.
type packFunc func(dst []byte, line []color.Color) []byte

// Pack packs one scan line of pixels under mode.
// The caller presents pixels in scan order; see Lines.
func Pack(pixels []color.Color, mode ColorMode) ([]byte, error) {
	fn, err := packerFor(mode, false)
	if err != nil {
		return nil, err
	}
	return fn(nil, pixels), nil
}

// packerFor returns the packing function for mode.
func packerFor(mode ColorMode, legacyGray4 bool) (packFunc, error) {
	switch mode {
	case ColorMono:
		return packMono, nil
	case ColorGray4:
		if legacyGray4 {
			return packGray4Legacy, nil
		}
		return packGray4, nil
	case ColorRGB565:
		return packRGB565, nil
	case ColorRGB565Packed:
		return packRGB565Packed, nil
	default:
		return nil, &ConfigError{Field: "color-mode", Value: mode, Err: ErrUnknownColorMode}
	}
}

// packMono emits 1 bit per pixel, MSB first. A trailing partial byte is
// zero-padded in its low bits.
func packMono(dst []byte, line []color.Color) []byte {
	var b byte
	mask := byte(0x80)
	for _, c := range line {
		if IsBlackLikely(c) {
			b |= mask
		}
		mask >>= 1
		if mask == 0 {
			dst = append(dst, b)
			b, mask = 0, 0x80
		}
	}
	if mask != 0x80 {
		dst = append(dst, b)
	}
	return dst
}

// packGray4 emits the high nibble of each pixel's luma, two pixels per
// byte, first pixel in the high nibble. An odd pixel count leaves a zero
// low nibble in the last byte.
func packGray4(dst []byte, line []color.Color) []byte {
	var b byte
	pending := false
	for _, c := range line {
		y := Luma(c) & 0xf0
		if !pending {
			b = y
		} else {
			dst = append(dst, b|y>>4)
		}
		pending = !pending
	}
	if pending {
		dst = append(dst, b)
	}
	return dst
}

// packGray4Legacy matches firmware images produced by earlier tooling,
// which always appended one byte after every line, even when no nibble
// was pending.
func packGray4Legacy(dst []byte, line []color.Color) []byte {
	dst = packGray4(dst, line)
	if len(line)%2 == 0 {
		dst = append(dst, 0)
	}
	return dst
}

func packRGB565(dst []byte, line []color.Color) []byte {
	for _, c := range line {
		v := RGB565(c)
		dst = append(dst, byte(v), byte(v>>8))
	}
	return dst
}

func packRGB565Packed(dst []byte, line []color.Color) []byte {
	for _, c := range line {
		v := RGB565(c)
		dst = append(dst, byte(v>>8), byte(v))
	}
	return dst
}
