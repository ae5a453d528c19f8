package lcdfont

import (
	"fmt"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// ColorMode selects the packed pixel encoding.
type ColorMode int

const (
	// ColorModeUnknown is the zero value and is rejected by the codec.
	ColorModeUnknown ColorMode = iota
	// ColorMono packs 1 bit per pixel, MSB first, black is 1.
	ColorMono
	// ColorGray4 packs 4-bit grayscale, two pixels per byte.
	ColorGray4
	// ColorRGB565 packs 16-bit 5-6-5 color, little-endian.
	ColorRGB565
	// ColorRGB565Packed packs 16-bit 5-6-5 color, big-endian.
	ColorRGB565Packed
)

// String returns the string representation of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorMono:
		return "Mono"
	case ColorGray4:
		return "Gray4"
	case ColorRGB565:
		return "RGB565"
	case ColorRGB565Packed:
		return "RGB565P"
	default:
		return unknownStr
	}
}

// Valid reports whether m is one of the known color modes.
func (m ColorMode) Valid() bool {
	return m >= ColorMono && m <= ColorRGB565Packed
}

// BitsPerPixel returns the encoded size of one pixel, or 0 for unknown modes.
func (m ColorMode) BitsPerPixel() int {
	switch m {
	case ColorMono:
		return 1
	case ColorGray4:
		return 4
	case ColorRGB565, ColorRGB565Packed:
		return 16
	default:
		return 0
	}
}

// ParseColorMode parses a color mode name. Matching is case-insensitive
// and accepts the short forms "mono", "gray4", "rgb565" and "rgb565p".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mono", "1bit":
		return ColorMono, nil
	case "gray4", "gray", "4bit":
		return ColorGray4, nil
	case "rgb565":
		return ColorRGB565, nil
	case "rgb565p", "rgb565-packed", "rgb565packed":
		return ColorRGB565Packed, nil
	}
	return ColorModeUnknown, &ConfigError{Field: "color-mode", Value: s, Err: ErrUnknownColorMode}
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorMode, int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(b []byte) error {
	v, err := ParseColorMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ScanMode selects the traversal order over a block before packing.
type ScanMode int

const (
	// ScanModeUnknown is the zero value and is rejected by the codec.
	ScanModeUnknown ScanMode = iota
	// ScanRow visits rows top to bottom, columns left to right.
	ScanRow
	// ScanColumn visits columns left to right, rows top to bottom.
	ScanColumn
)

// String returns the string representation of the scan mode.
func (m ScanMode) String() string {
	switch m {
	case ScanRow:
		return "Row"
	case ScanColumn:
		return "Column"
	default:
		return unknownStr
	}
}

// Valid reports whether m is one of the known scan modes.
func (m ScanMode) Valid() bool {
	return m == ScanRow || m == ScanColumn
}

// ParseScanMode parses a scan mode name ("row" or "column").
func ParseScanMode(s string) (ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "rows", "row-scan":
		return ScanRow, nil
	case "column", "col", "columns", "column-scan":
		return ScanColumn, nil
	}
	return ScanModeUnknown, &ConfigError{Field: "scan-mode", Value: s, Err: ErrUnknownScanMode}
}

// MarshalText implements encoding.TextMarshaler.
func (m ScanMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScanMode, int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScanMode) UnmarshalText(b []byte) error {
	v, err := ParseScanMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
