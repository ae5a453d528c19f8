package lcdfont

import (
	"fmt"
	"image/color"
	"strings"
)

// Limits applied by FontSettings.Validate.
const (
	// MinBlockSize is the smallest accepted block width or height in pixels.
	MinBlockSize = 8

	// MaxOffset is the largest accepted absolute glyph offset in pixels.
	MaxOffset = 15
)

// Style selects the font style variant.
type Style int

const (
	// StyleRegular is the upright, normal-weight variant.
	StyleRegular Style = iota
	// StyleItalic is the italic variant.
	StyleItalic
	// StyleBold is the bold variant.
	StyleBold
	// StyleBoldItalic is the bold italic variant.
	StyleBoldItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "Regular"
	case StyleItalic:
		return "Italic"
	case StyleBold:
		return "Bold"
	case StyleBoldItalic:
		return "Bold Italic"
	default:
		return unknownStr
	}
}

// IsBold reports whether the style has bold weight.
func (s Style) IsBold() bool { return s == StyleBold || s == StyleBoldItalic }

// IsItalic reports whether the style is slanted.
func (s Style) IsItalic() bool { return s == StyleItalic || s == StyleBoldItalic }

// ParseStyle parses a style name such as "bold" or "bold-italic".
func ParseStyle(s string) (Style, error) {
	switch normalizeName(s) {
	case "", "regular", "normal", "book":
		return StyleRegular, nil
	case "italic", "oblique":
		return StyleItalic, nil
	case "bold":
		return StyleBold, nil
	case "bolditalic", "italicbold", "boldoblique":
		return StyleBoldItalic, nil
	}
	return StyleRegular, &ConfigError{Field: "style", Value: s, Err: fmt.Errorf("lcdfont: unknown style")}
}

// Antialias selects the glyph rendering quality.
type Antialias int

const (
	// AntialiasSystem uses the backend default (antialiased, hinted).
	AntialiasSystem Antialias = iota
	// AntialiasPixel renders hard-edged pixels without intermediate coverage.
	AntialiasPixel
	// AntialiasTrueType renders antialiased, unhinted outlines.
	AntialiasTrueType
	// AntialiasClearType renders antialiased, fully hinted outlines.
	// Subpixel rendering is not performed.
	AntialiasClearType
)

// String returns the string representation of the antialias mode.
func (a Antialias) String() string {
	switch a {
	case AntialiasSystem:
		return "System"
	case AntialiasPixel:
		return "Pixel"
	case AntialiasTrueType:
		return "TrueType"
	case AntialiasClearType:
		return "ClearType"
	default:
		return unknownStr
	}
}

// ParseAntialias parses an antialias mode name.
func ParseAntialias(s string) (Antialias, error) {
	switch normalizeName(s) {
	case "", "system", "default":
		return AntialiasSystem, nil
	case "pixel", "none", "mono":
		return AntialiasPixel, nil
	case "truetype", "aa":
		return AntialiasTrueType, nil
	case "cleartype":
		return AntialiasClearType, nil
	}
	return AntialiasSystem, &ConfigError{Field: "antialias", Value: s, Err: fmt.Errorf("lcdfont: unknown antialias mode")}
}

// HAlign is the horizontal placement of a glyph inside its block.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical placement of a glyph inside its block.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Alignment is one cell of the 3x3 placement grid.
type Alignment struct {
	H HAlign
	V VAlign
}

// String returns the alignment as "vertical-horizontal", e.g. "middle-center".
func (a Alignment) String() string {
	v := [...]string{"top", "middle", "bottom"}
	h := [...]string{"left", "center", "right"}
	if int(a.V) < 0 || int(a.V) >= len(v) || int(a.H) < 0 || int(a.H) >= len(h) {
		return unknownStr
	}
	return v[a.V] + "-" + h[a.H]
}

// ParseAlignment parses names like "top-left", "center" or "bottom-right".
// A single word sets one axis and centers the other.
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment{H: AlignCenter, V: AlignMiddle}
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == ','
	})
	for _, f := range fields {
		switch f {
		case "top":
			a.V = AlignTop
		case "middle":
			a.V = AlignMiddle
		case "bottom":
			a.V = AlignBottom
		case "left":
			a.H = AlignLeft
		case "center", "centre":
			a.H = AlignCenter
		case "right":
			a.H = AlignRight
		default:
			return a, &ConfigError{Field: "align", Value: s, Err: fmt.Errorf("lcdfont: unknown alignment")}
		}
	}
	return a, nil
}

// Font describes a typeface request.
type Font struct {
	Family string
	Size   float64 // points at 72 DPI, i.e. pixels per em
	Style  Style
}

// FontSettings is the snapshot read by one render or export pass.
// The caller owns it and must not mutate it while a pass is running.
type FontSettings struct {
	Font      Font
	Antialias Antialias

	// BlockWidth and BlockHeight are the glyph block size in pixels.
	BlockWidth  int
	BlockHeight int

	// OffsetX and OffsetY shift the glyph inside its block.
	OffsetX int
	OffsetY int

	Foreground color.Color
	Background color.Color
	Align      Alignment

	// Chars is the managed character sequence, already sorted,
	// deduplicated and newline-filtered by the caller.
	Chars []rune
}

// DefaultFontSettings returns a 16x16 block, white on black, centered,
// holding printable ASCII.
func DefaultFontSettings() FontSettings {
	chars := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		chars = append(chars, r)
	}
	return FontSettings{
		Font:        Font{Size: 12},
		Antialias:   AntialiasTrueType,
		BlockWidth:  16,
		BlockHeight: 16,
		Foreground:  color.White,
		Background:  color.Black,
		Align:       Alignment{H: AlignCenter, V: AlignMiddle},
		Chars:       chars,
	}
}

// Validate checks block size, offsets and colors.
func (s *FontSettings) Validate() error {
	switch {
	case s.BlockWidth < MinBlockSize:
		return &ConfigError{Field: "block-width", Value: s.BlockWidth, Err: ErrBlockTooSmall}
	case s.BlockHeight < MinBlockSize:
		return &ConfigError{Field: "block-height", Value: s.BlockHeight, Err: ErrBlockTooSmall}
	case s.OffsetX < -MaxOffset || s.OffsetX > MaxOffset:
		return &ConfigError{Field: "offset-x", Value: s.OffsetX, Err: ErrOffsetOutOfRange}
	case s.OffsetY < -MaxOffset || s.OffsetY > MaxOffset:
		return &ConfigError{Field: "offset-y", Value: s.OffsetY, Err: ErrOffsetOutOfRange}
	case s.Foreground == nil:
		return &ConfigError{Field: "foreground", Value: nil, Err: ErrNilColor}
	case s.Background == nil:
		return &ConfigError{Field: "background", Value: nil, Err: ErrNilColor}
	}
	return nil
}

// normalizeName lowercases s and strips separators.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '+':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
