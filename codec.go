package lcdfont

import (
	"image"
)

// CodecOption configures a Codec.
type CodecOption func(*codecConfig)

// codecConfig holds configuration for Codec.
type codecConfig struct {
	legacyGray4 bool
}

// WithLegacyGray4Trailer makes ColorGray4 append a byte after every scan
// line, including lines with an even pixel count. Use it only when output
// must match firmware images built by earlier tooling byte for byte.
func WithLegacyGray4Trailer() CodecOption {
	return func(c *codecConfig) {
		c.legacyGray4 = true
	}
}

// Codec packs glyph blocks under one ColorMode and ScanMode pair.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	color  ColorMode
	scan   ScanMode
	pack   packFunc
	config codecConfig
}

// NewCodec validates both modes and returns a Codec. Unknown modes fail
// with a *ConfigError before any bytes are produced.
func NewCodec(colorMode ColorMode, scanMode ScanMode, opts ...CodecOption) (*Codec, error) {
	if !scanMode.Valid() {
		return nil, &ConfigError{Field: "scan-mode", Value: scanMode, Err: ErrUnknownScanMode}
	}

	config := codecConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	fn, err := packerFor(colorMode, config.legacyGray4)
	if err != nil {
		return nil, err
	}
	return &Codec{color: colorMode, scan: scanMode, pack: fn, config: config}, nil
}

// ColorMode returns the codec's color mode.
func (c *Codec) ColorMode() ColorMode { return c.color }

// ScanMode returns the codec's scan mode.
func (c *Codec) ScanMode() ScanMode { return c.scan }

// PackBlock packs every scan line of img and returns the concatenation.
func (c *Codec) PackBlock(img image.Image) []byte {
	return c.AppendBlock(make([]byte, 0, c.BlockSize(img.Bounds().Dx(), img.Bounds().Dy())), img)
}

// AppendBlock appends the packed scan lines of img to dst.
func (c *Codec) AppendBlock(dst []byte, img image.Image) []byte {
	for line := range Lines(img, c.scan) {
		dst = c.pack(dst, line)
	}
	return dst
}

// BlockSize returns the packed size in bytes of a width x height block.
func (c *Codec) BlockSize(width, height int) int {
	lines, perLine := height, width
	if c.scan == ScanColumn {
		lines, perLine = width, height
	}
	return lines * c.lineSize(perLine)
}

// lineSize returns the packed size of one scan line of n pixels.
func (c *Codec) lineSize(n int) int {
	switch c.color {
	case ColorMono:
		return (n + 7) / 8
	case ColorGray4:
		size := (n + 1) / 2
		if n%2 == 0 && c.config.legacyGray4 {
			size++
		}
		return size
	default:
		return n * 2
	}
}
