// Package export writes packed glyph streams as firmware resources: a C
// source array or raw binary.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"unicode"

	"github.com/gogpu/lcdfont"
)

// ErrInvalidName is returned when an array name is not a C identifier.
var ErrInvalidName = errors.New("export: invalid array name")

// identRE matches a C identifier.
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Header describes the font in the comment block above the array.
type Header struct {
	Font      lcdfont.Font
	Width     int
	Height    int
	ColorMode lcdfont.ColorMode
	ScanMode  lcdfont.ScanMode
}

// WriteC writes glyphs as a C array named name. Each glyph occupies one
// line followed by a comment naming its character, so the array can be
// indexed by sequence position times the glyph size.
func WriteC(w io.Writer, name string, glyphs []lcdfont.Glyph, h Header) error {
	if !identRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Font: %s %vpt %s\n", h.Font.Family, h.Font.Size, h.Font.Style)
	fmt.Fprintf(bw, "// Block: %dx%d, color: %s, scan: %s\n", h.Width, h.Height, h.ColorMode, h.ScanMode)
	fmt.Fprintf(bw, "// Glyphs: %d\n\n", len(glyphs))
	fmt.Fprintf(bw, "const unsigned char %s[] = {\n", name)

	total := 0
	for _, g := range glyphs {
		bw.WriteString("    ")
		for _, b := range g.Data {
			fmt.Fprintf(bw, "0x%02X, ", b)
		}
		fmt.Fprintf(bw, "// %s U+%04X\n", quoteChar(g.Char), g.Char)
		total += len(g.Data)
	}
	bw.WriteString("};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	lcdfont.Logger().Debug("export: wrote C array", "name", name, "glyphs", len(glyphs), "bytes", total)
	return nil
}

// WriteBinary writes the concatenated glyph streams.
func WriteBinary(w io.Writer, glyphs []lcdfont.Glyph) error {
	if _, err := w.Write(lcdfont.Concat(glyphs)); err != nil {
		return fmt.Errorf("export: write binary: %w", err)
	}
	return nil
}

// quoteChar renders r for a C line comment. Characters that could end the
// comment or confuse an editor are escaped.
func quoteChar(r rune) string {
	switch {
	case r == '\\':
		return `'\\'`
	case unicode.IsPrint(r):
		return "'" + string(r) + "'"
	default:
		return strconv.QuoteRuneToASCII(r)
	}
}
