package lcdfont

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors are accepted by ParseColor in addition to hex forms.
var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"transparent": {},
}

// ParseColor parses a color string.
// Supports formats: "#RGB", "#RRGGBB", "RRGGBB", "AARRGGBB" (alpha first)
// and the names black, white, red, green, blue and transparent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(0xff)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		hex = hex[2:]
	}
	if len(hex) != 3 && len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor formats c as "AARRGGBB", the inverse of ParseColor.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("%02x%02x%02x%02x", n.A, n.R, n.G, n.B)
}
