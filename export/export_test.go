package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/lcdfont"
)

func testGlyphs() []lcdfont.Glyph {
	return []lcdfont.Glyph{
		{Char: 'A', Data: []byte{0x00, 0xFF}},
		{Char: '\\', Data: []byte{0x10, 0x01}},
		{Char: '\n', Data: []byte{0xAB, 0xCD}},
	}
}

func TestWriteC(t *testing.T) {
	var buf bytes.Buffer
	h := Header{
		Font:      lcdfont.Font{Family: "Go", Size: 12, Style: lcdfont.StyleBold},
		Width:     16,
		Height:    16,
		ColorMode: lcdfont.ColorMono,
		ScanMode:  lcdfont.ScanRow,
	}
	if err := WriteC(&buf, "font_16x16", testGlyphs(), h); err != nil {
		t.Fatalf("WriteC: %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"// Font: Go 12pt Bold",
		"// Block: 16x16, color: Mono, scan: Row",
		"// Glyphs: 3",
		"const unsigned char font_16x16[] = {",
		"    0x00, 0xFF, // 'A' U+0041",
		`    0x10, 0x01, // '\\' U+005C`,
		`    0xAB, 0xCD, // '\n' U+000A`,
		"};",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing line %q\n%s", line, out)
		}
	}
}

func TestWriteCInvalidName(t *testing.T) {
	for _, name := range []string{"", "1font", "font-data", "font data"} {
		var buf bytes.Buffer
		err := WriteC(&buf, name, testGlyphs(), Header{})
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("WriteC(%q) err = %v, want ErrInvalidName", name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("WriteC(%q) wrote output before failing", name)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	if err := WriteC(failWriter{}, "x", testGlyphs(), Header{}); err == nil {
		t.Error("WriteC should report write errors")
	}
	if err := WriteBinary(failWriter{}, testGlyphs()); err == nil {
		t.Error("WriteBinary should report write errors")
	}
}

func TestWriteBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, testGlyphs()); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0xFF, 0x10, 0x01, 0xAB, 0xCD}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteBinary = % X, want % X", buf.Bytes(), want)
	}
}

func TestQuoteChar(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', "'a'"},
		{'中', "'中'"},
		{'\\', `'\\'`},
		{'\r', `'\r'`},
		{0x7f, `'\x7f'`},
	}
	for _, tt := range tests {
		if got := quoteChar(tt.r); got != tt.want {
			t.Errorf("quoteChar(%U) = %s, want %s", tt.r, got, tt.want)
		}
	}
}
