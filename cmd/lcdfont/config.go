package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lcdfont"
	"github.com/gogpu/lcdfont/charset"
)

// Config is the export profile. It can be loaded from a YAML file and is
// then overridden by environment variables and command line flags.
type Config struct {
	Font struct {
		Family string  `yaml:"family"`
		File   string  `yaml:"file"`
		Size   float64 `yaml:"size"`
		Style  string  `yaml:"style"`
	} `yaml:"font"`

	Antialias string `yaml:"antialias"`

	Block struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"block"`

	Offset struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"offset"`

	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Align      string `yaml:"align"`

	Chars     string   `yaml:"chars"`
	CharsFile string   `yaml:"chars_file"`
	Ranges    []string `yaml:"ranges"`

	Charset struct {
		Normalize     bool `yaml:"normalize"`
		IgnoreNewline bool `yaml:"ignore_newline"`
		InsertNewline bool `yaml:"insert_newline"`
		Dedupe        bool `yaml:"dedupe"`
		Sort          bool `yaml:"sort"`
	} `yaml:"charset"`

	ColorMode   lcdfont.ColorMode `yaml:"color_mode"`
	ScanMode    lcdfont.ScanMode  `yaml:"scan_mode"`
	LegacyGray4 bool              `yaml:"legacy_gray4"`

	Name    string `yaml:"name"`
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`
	Workers int    `yaml:"workers"`

	Preview struct {
		File   string `yaml:"file"`
		Height int    `yaml:"height"`
		Scroll int    `yaml:"scroll"`
		Zoom   int    `yaml:"zoom"`
	} `yaml:"preview"`

	FontDirs      []string `yaml:"font_dirs"`
	NoSystemFonts bool     `yaml:"no_system_fonts"`
	LogLevel      string   `yaml:"log_level"`
}

// defaultConfig mirrors lcdfont.DefaultFontSettings.
func defaultConfig() Config {
	var c Config
	c.Font.Size = 12
	c.Antialias = "truetype"
	c.Block.Width, c.Block.Height = 16, 16
	c.Foreground = "ffffffff"
	c.Background = "ff000000"
	c.Align = "middle-center"
	c.Charset.Normalize = true
	c.Charset.IgnoreNewline = true
	c.Charset.Dedupe = true
	c.ColorMode = lcdfont.ColorMono
	c.ScanMode = lcdfont.ScanRow
	c.Name = "font_data"
	c.Format = "c"
	c.Preview.Height = 300
	c.Preview.Zoom = 1
	c.LogLevel = "info"
	return c
}

// loadConfig reads a YAML profile on top of the defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	// #nosec G304 -- Profile path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// applyEnv overrides c from LCDFONT_* environment variables.
func (c *Config) applyEnv() {
	if dirs := os.Getenv("LCDFONT_FONT_DIRS"); dirs != "" {
		c.FontDirs = append(c.FontDirs, filepath.SplitList(dirs)...)
	}
	if level := os.Getenv("LCDFONT_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if name := os.Getenv("LCDFONT_FONT"); name != "" && c.Font.Family == "" {
		c.Font.Family = name
	}
}

// charsetOptions converts the profile's charset section.
func (c *Config) charsetOptions() charset.Options {
	return charset.Options{
		Normalize:     c.Charset.Normalize,
		IgnoreNewline: c.Charset.IgnoreNewline,
		InsertNewline: c.Charset.InsertNewline,
		Dedupe:        c.Charset.Dedupe,
		Sort:          c.Charset.Sort,
	}
}

// Settings builds the FontSettings snapshot described by c.
func (c *Config) Settings() (lcdfont.FontSettings, error) {
	s := lcdfont.DefaultFontSettings()

	style, err := lcdfont.ParseStyle(c.Font.Style)
	if err != nil {
		return s, err
	}
	aa, err := lcdfont.ParseAntialias(c.Antialias)
	if err != nil {
		return s, err
	}
	align, err := lcdfont.ParseAlignment(c.Align)
	if err != nil {
		return s, err
	}
	fg, err := lcdfont.ParseColor(c.Foreground)
	if err != nil {
		return s, err
	}
	bg, err := lcdfont.ParseColor(c.Background)
	if err != nil {
		return s, err
	}
	chars, err := c.chars()
	if err != nil {
		return s, err
	}

	s.Font = lcdfont.Font{Family: c.Font.Family, Size: c.Font.Size, Style: style}
	s.Antialias = aa
	s.BlockWidth, s.BlockHeight = c.Block.Width, c.Block.Height
	s.OffsetX, s.OffsetY = c.Offset.X, c.Offset.Y
	s.Foreground, s.Background = fg, bg
	s.Align = align
	s.Chars = chars
	return s, s.Validate()
}

// chars assembles the character sequence from ranges, the chars file and
// the literal chars, then applies the charset options. With none given,
// printable ASCII is used.
func (c *Config) chars() ([]rune, error) {
	var b strings.Builder
	for _, name := range c.Ranges {
		rs, err := parseRange(name)
		if err != nil {
			return nil, err
		}
		b.WriteString(string(rs))
	}
	if c.CharsFile != "" {
		// #nosec G304 -- Character file path is provided by the user
		data, err := os.ReadFile(c.CharsFile)
		if err != nil {
			return nil, fmt.Errorf("read chars file: %w", err)
		}
		b.Write(data)
	}
	b.WriteString(c.Chars)

	if b.Len() == 0 {
		ascii, _ := charset.Range("ascii")
		return ascii, nil
	}
	return charset.Prepare(b.String(), c.charsetOptions()), nil
}

// parseRange accepts a built-in range name or a span "U+4E00-U+4E2F".
func parseRange(s string) ([]rune, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return charset.Range(s)
	}
	from, okFrom := parseRune(lo)
	to, okTo := parseRune(hi)
	if !okFrom || !okTo || from > to {
		return charset.Range(s)
	}
	out := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		out = append(out, r)
	}
	return out, nil
}

// parseRune parses "U+XXXX", "0xXXXX" or a decimal code point.
func parseRune(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	code, err := strconv.ParseInt(s, base, 32)
	if err != nil || code < 0 || code > 0x10ffff || (code >= 0xd800 && code <= 0xdfff) {
		return 0, false
	}
	return rune(code), true
}
