// Package charset prepares the managed character sequence that lcdfont
// rasterizes: normalization, newline handling, deduplication, sorting and
// built-in character ranges.
package charset

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/unicode/norm"
)

// Options controls Prepare.
type Options struct {
	// Normalize composes the input to NFC before splitting into runes, so
	// "e" + U+0301 becomes a single 'é' glyph.
	Normalize bool

	// IgnoreNewline drops '\r' and '\n'.
	IgnoreNewline bool

	// InsertNewline makes sure '\r' and '\n' are present, so firmware can
	// index them like any other character. Ignored with IgnoreNewline.
	InsertNewline bool

	// Dedupe keeps only the first occurrence of each rune.
	Dedupe bool

	// Sort orders the sequence by code point.
	Sort bool
}

// DefaultOptions normalizes, deduplicates and drops newlines.
func DefaultOptions() Options {
	return Options{Normalize: true, IgnoreNewline: true, Dedupe: true}
}

// Prepare turns input into the character sequence described by opts.
func Prepare(input string, opts Options) []rune {
	if opts.Normalize {
		input = norm.NFC.String(input)
	}

	chars := make([]rune, 0, len(input))
	for _, r := range input {
		if opts.IgnoreNewline && isNewline(r) {
			continue
		}
		chars = append(chars, r)
	}

	if opts.InsertNewline && !opts.IgnoreNewline {
		for _, nl := range []rune{'\r', '\n'} {
			if !slices.Contains(chars, nl) {
				chars = append(chars, nl)
			}
		}
	}

	if opts.Dedupe {
		chars = Dedupe(chars)
	}
	if opts.Sort {
		slices.Sort(chars)
	}
	return chars
}

// Dedupe removes repeated runes, keeping the first occurrence of each.
// It reuses the backing array of chars.
func Dedupe(chars []rune) []rune {
	seen := make(map[rune]struct{}, len(chars))
	out := chars[:0]
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func isNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

// Range returns a built-in character range by name:
//
//   - "ascii": printable ASCII, U+0020..U+007E
//   - "latin1": printable Latin-1, ASCII plus U+00A0..U+00FF
//   - "digits": '0'..'9'
//   - "gb2312": the GB2312 symbol and hanzi rows, in code order
func Range(name string) ([]rune, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii":
		return runeRange(0x20, 0x7e), nil
	case "latin1", "latin-1", "iso-8859-1":
		return append(runeRange(0x20, 0x7e), runeRange(0xa0, 0xff)...), nil
	case "digits":
		return runeRange('0', '9'), nil
	case "gb2312":
		return gb2312()
	}
	return nil, fmt.Errorf("charset: unknown range %q", name)
}

// runeRange returns lo..hi inclusive.
func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// gb2312 decodes every assigned two-byte GB2312 code: symbol rows
// 0xA1-0xA9 and hanzi rows 0xB0-0xF7, cells 0xA1-0xFE.
func gb2312() ([]rune, error) {
	dec := simplifiedchinese.GBK.NewDecoder()
	out := make([]rune, 0, 7445)
	for hi := 0xa1; hi <= 0xf7; hi++ {
		if hi > 0xa9 && hi < 0xb0 {
			continue
		}
		for lo := 0xa1; lo <= 0xfe; lo++ {
			b, err := dec.Bytes([]byte{byte(hi), byte(lo)})
			if err != nil {
				return nil, fmt.Errorf("charset: decode gb2312 %02X%02X: %w", hi, lo, err)
			}
			r := []rune(string(b))
			if len(r) != 1 || r[0] == unicode.ReplacementChar || unicode.Is(unicode.Co, r[0]) {
				continue
			}
			out = append(out, r[0])
		}
	}
	return out, nil
}
