package lcdfont

import (
	"errors"
	"fmt"
)

// NoMatch is returned by index lookups when a position falls outside the
// glyph grid. Pointer misses are expected while browsing, so they are not
// reported as errors.
const NoMatch = -1

// Sentinel errors for lcdfont.
var (
	// ErrUnknownColorMode is returned for a ColorMode outside the known set.
	ErrUnknownColorMode = errors.New("lcdfont: unknown color mode")

	// ErrUnknownScanMode is returned for a ScanMode outside the known set.
	ErrUnknownScanMode = errors.New("lcdfont: unknown scan mode")

	// ErrBlockTooSmall is returned when a block dimension is below MinBlockSize.
	ErrBlockTooSmall = errors.New("lcdfont: block size too small")

	// ErrOffsetOutOfRange is returned when a glyph offset exceeds MaxOffset.
	ErrOffsetOutOfRange = errors.New("lcdfont: offset out of range")

	// ErrNilColor is returned when a foreground or background color is missing.
	ErrNilColor = errors.New("lcdfont: nil color")

	// ErrNoPixelSource is returned when a Rasterizer has no PixelSource.
	ErrNoPixelSource = errors.New("lcdfont: no pixel source")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("lcdfont: invalid color")
)

// ConfigError reports an invalid configuration value. It is returned
// before any rasterizing or packing work starts.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Err, e.Field, e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
