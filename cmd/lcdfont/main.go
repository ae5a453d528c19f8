// Command lcdfont converts a typeface into a packed glyph array for LCD
// firmware.
//
// Usage:
//
//	lcdfont --font "DejaVu Sans" --size 12 --block 16x16 --color-mode mono --output font.c
package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/gogpu/lcdfont"
	"github.com/gogpu/lcdfont/export"
	"github.com/gogpu/lcdfont/text"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// A missing .env is fine; it only supplies defaults.
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("lcdfont", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		configPath  string
		showVersion bool
		listFonts   bool
		verbose     bool
		block       string
		colorMode   string
		scanMode    string
		ranges      []string
		fontDirs    []string
	)
	c := defaultConfig()

	flags.StringVarP(&configPath, "config", "c", "", "YAML export profile")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	flags.BoolVar(&listFonts, "list-fonts", false, "List installed font families and exit")
	flags.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flags.StringVarP(&c.Font.Family, "font", "f", c.Font.Family, "Font family name (default: built-in Go font)")
	flags.StringVar(&c.Font.File, "font-file", c.Font.File, "Load the font from this file instead of the library")
	flags.Float64VarP(&c.Font.Size, "size", "s", c.Font.Size, "Font size in pixels per em")
	flags.StringVar(&c.Font.Style, "style", c.Font.Style, "Font style: regular, italic, bold, bold-italic")
	flags.StringVar(&c.Antialias, "antialias", c.Antialias, "Antialias mode: pixel, truetype, cleartype, system")
	flags.StringVarP(&block, "block", "b", "", "Block size WxH (default 16x16)")
	flags.IntVar(&c.Offset.X, "offset-x", c.Offset.X, "Horizontal glyph offset (-15..15)")
	flags.IntVar(&c.Offset.Y, "offset-y", c.Offset.Y, "Vertical glyph offset (-15..15)")
	flags.StringVar(&c.Foreground, "fg", c.Foreground, "Foreground color (AARRGGBB or #RRGGBB)")
	flags.StringVar(&c.Background, "bg", c.Background, "Background color (AARRGGBB or #RRGGBB)")
	flags.StringVar(&c.Align, "align", c.Align, "Alignment, e.g. top-left, middle-center, bottom-right")
	flags.StringVar(&c.Chars, "chars", c.Chars, "Characters to export")
	flags.StringVar(&c.CharsFile, "chars-file", c.CharsFile, "Read characters to export from a UTF-8 file")
	flags.StringSliceVarP(&ranges, "range", "r", nil, "Character range: ascii, latin1, digits, gb2312 or U+XXXX-U+YYYY")
	flags.BoolVar(&c.Charset.Sort, "sort", c.Charset.Sort, "Sort characters by code point")
	flags.BoolVar(&c.Charset.Dedupe, "dedupe", c.Charset.Dedupe, "Drop duplicate characters")
	flags.BoolVar(&c.Charset.IgnoreNewline, "ignore-newline", c.Charset.IgnoreNewline, "Drop CR and LF from the character list")
	flags.BoolVar(&c.Charset.InsertNewline, "insert-newline", c.Charset.InsertNewline, "Make sure CR and LF are in the character list")
	flags.StringVarP(&colorMode, "color-mode", "m", "", "Color mode: mono, gray4, rgb565, rgb565p (default mono)")
	flags.StringVar(&scanMode, "scan-mode", "", "Scan mode: row, column (default row)")
	flags.BoolVar(&c.LegacyGray4, "legacy-gray4", c.LegacyGray4, "Append a byte after every gray4 scan line")
	flags.StringVarP(&c.Name, "name", "n", c.Name, "C array name")
	flags.StringVarP(&c.Output, "output", "o", c.Output, "Output file (default stdout)")
	flags.StringVar(&c.Format, "format", c.Format, "Output format: c, bin")
	flags.IntVarP(&c.Workers, "workers", "j", c.Workers, "Export workers (0 = GOMAXPROCS, 1 = sequential)")
	flags.StringVar(&c.Preview.File, "preview", c.Preview.File, "Write a PNG preview of the glyph grid")
	flags.IntVar(&c.Preview.Height, "preview-height", c.Preview.Height, "Preview viewport height in pixels")
	flags.IntVar(&c.Preview.Scroll, "preview-scroll", c.Preview.Scroll, "Preview scroll offset in scroll units")
	flags.IntVar(&c.Preview.Zoom, "preview-zoom", c.Preview.Zoom, "Enlarge the preview by this integer factor")
	flags.StringSliceVar(&fontDirs, "font-dir", nil, "Extra font directory to scan (repeatable)")
	flags.BoolVar(&c.NoSystemFonts, "no-system-fonts", c.NoSystemFonts, "Do not scan the operating system font directories")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "lcdfont version %s (commit: %s)\n", version, commit)
		return 0
	}

	// Profile values are the base; explicitly set flags win.
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		c = mergeFlags(loaded, c, flags)
	}
	c.applyEnv()
	c.FontDirs = append(c.FontDirs, fontDirs...)
	c.Ranges = append(c.Ranges, ranges...)
	if verbose {
		c.LogLevel = "debug"
	}

	if err := applyModeFlags(&c, block, colorMode, scanMode); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, c.LogLevel)
	lcdfont.SetLogger(logger)

	lib, err := newLibrary(&c)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		_ = lib.Close()
	}()

	if listFonts {
		for _, family := range lib.Families() {
			styles := make([]string, 0, 4)
			for _, st := range lib.Styles(family) {
				styles = append(styles, st.String())
			}
			fmt.Fprintf(stdout, "%s\t%s\n", family, strings.Join(styles, ", "))
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := exportFont(ctx, &c, lib, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLibrary builds the font library, registering --font-file if given.
func newLibrary(c *Config) (*text.Library, error) {
	opts := []text.LibraryOption{text.WithDirs(c.FontDirs...)}
	if c.NoSystemFonts {
		opts = append(opts, text.WithoutSystemFonts())
	}
	if c.Font.File != "" {
		src, err := text.NewFontSourceFromFile(c.Font.File)
		if err != nil {
			return nil, err
		}
		opts = append(opts, text.WithSources(src))
		if c.Font.Family == "" {
			c.Font.Family = src.Family()
		}
	}
	return text.NewLibrary(opts...)
}

// exportFont rasterizes, packs and writes the font, plus the preview.
func exportFont(ctx context.Context, c *Config, lib *text.Library, stdout io.Writer) error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}

	var codecOpts []lcdfont.CodecOption
	if c.LegacyGray4 {
		codecOpts = append(codecOpts, lcdfont.WithLegacyGray4Trailer())
	}
	codec, err := lcdfont.NewCodec(c.ColorMode, c.ScanMode, codecOpts...)
	if err != nil {
		return err
	}

	logger := lcdfont.Logger()
	if missing, err := lib.Missing(settings.Font, settings.Chars); err != nil {
		return err
	} else if len(missing) > 0 {
		logger.Warn("characters without glyph", "count", len(missing), "chars", string(missing))
	}

	r := lcdfont.NewRasterizer(lib)
	var glyphs []lcdfont.Glyph
	if c.Workers == 1 {
		glyphs, err = lcdfont.Export(ctx, r, &settings, codec)
	} else {
		glyphs, err = lcdfont.ExportParallel(ctx, r, &settings, codec, c.Workers)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(c, &settings, codec, glyphs, stdout); err != nil {
		return err
	}

	if c.Preview.File != "" {
		if err := writePreview(c, &settings, r); err != nil {
			return err
		}
	}
	return nil
}

// writeOutput writes glyphs to c.Output or stdout in c.Format.
func writeOutput(c *Config, s *lcdfont.FontSettings, codec *lcdfont.Codec, glyphs []lcdfont.Glyph, stdout io.Writer) error {
	var write func(w io.Writer) error
	switch strings.ToLower(c.Format) {
	case "bin", "binary":
		write = func(w io.Writer) error { return export.WriteBinary(w, glyphs) }
	case "c", "":
		write = func(w io.Writer) error {
			return export.WriteC(w, c.Name, glyphs, export.Header{
				Font:      s.Font,
				Width:     s.BlockWidth,
				Height:    s.BlockHeight,
				ColorMode: codec.ColorMode(),
				ScanMode:  codec.ScanMode(),
			})
		}
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	if c.Output == "" {
		return write(stdout)
	}
	if err := writeFile(c.Output, write); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// writePreview composites the glyph grid, enlarges it by the preview zoom
// and saves it as PNG.
func writePreview(c *Config, s *lcdfont.FontSettings, r *lcdfont.Rasterizer) error {
	layout := lcdfont.DefaultLayout()
	scroll := min(max(c.Preview.Scroll, 0), layout.ScrollMaximum(c.Preview.Height, s))
	img, err := layout.Preview(c.Preview.Height, s, scroll, r)
	if err != nil {
		return err
	}
	if c.Preview.Zoom > 1 {
		img = lcdfont.ZoomBlock(img, c.Preview.Zoom)
	}

	err = writeFile(c.Preview.File, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	lcdfont.Logger().Info("preview written", "file", c.Preview.File,
		"scroll", scroll, "max", layout.ScrollMaximum(c.Preview.Height, s), "zoom", c.Preview.Zoom)
	return nil
}

// writeFile creates path and hands it to write. A Close error is returned
// when write itself succeeded.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// applyModeFlags parses the flags that need validation before use.
func applyModeFlags(c *Config, block, colorMode, scanMode string) error {
	if block != "" {
		w, h, err := parseBlock(block)
		if err != nil {
			return err
		}
		c.Block.Width, c.Block.Height = w, h
	}
	if colorMode != "" {
		m, err := lcdfont.ParseColorMode(colorMode)
		if err != nil {
			return err
		}
		c.ColorMode = m
	}
	if scanMode != "" {
		m, err := lcdfont.ParseScanMode(scanMode)
		if err != nil {
			return err
		}
		c.ScanMode = m
	}
	return nil
}

// parseBlock parses "WxH" or a single number for square blocks.
func parseBlock(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		hs = ws
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid block size %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid block size %q", s)
	}
	return w, h, nil
}

// mergeFlags returns profile with every explicitly set flag copied from
// fromFlags.
func mergeFlags(profile, fromFlags Config, flags *pflag.FlagSet) Config {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("font", func() { profile.Font.Family = fromFlags.Font.Family })
	set("font-file", func() { profile.Font.File = fromFlags.Font.File })
	set("size", func() { profile.Font.Size = fromFlags.Font.Size })
	set("style", func() { profile.Font.Style = fromFlags.Font.Style })
	set("antialias", func() { profile.Antialias = fromFlags.Antialias })
	set("offset-x", func() { profile.Offset.X = fromFlags.Offset.X })
	set("offset-y", func() { profile.Offset.Y = fromFlags.Offset.Y })
	set("fg", func() { profile.Foreground = fromFlags.Foreground })
	set("bg", func() { profile.Background = fromFlags.Background })
	set("align", func() { profile.Align = fromFlags.Align })
	set("chars", func() { profile.Chars = fromFlags.Chars })
	set("chars-file", func() { profile.CharsFile = fromFlags.CharsFile })
	set("sort", func() { profile.Charset.Sort = fromFlags.Charset.Sort })
	set("dedupe", func() { profile.Charset.Dedupe = fromFlags.Charset.Dedupe })
	set("ignore-newline", func() { profile.Charset.IgnoreNewline = fromFlags.Charset.IgnoreNewline })
	set("insert-newline", func() { profile.Charset.InsertNewline = fromFlags.Charset.InsertNewline })
	set("legacy-gray4", func() { profile.LegacyGray4 = fromFlags.LegacyGray4 })
	set("name", func() { profile.Name = fromFlags.Name })
	set("output", func() { profile.Output = fromFlags.Output })
	set("format", func() { profile.Format = fromFlags.Format })
	set("workers", func() { profile.Workers = fromFlags.Workers })
	set("preview", func() { profile.Preview.File = fromFlags.Preview.File })
	set("preview-height", func() { profile.Preview.Height = fromFlags.Preview.Height })
	set("preview-scroll", func() { profile.Preview.Scroll = fromFlags.Preview.Scroll })
	set("preview-zoom", func() { profile.Preview.Zoom = fromFlags.Preview.Zoom })
	set("no-system-fonts", func() { profile.NoSystemFonts = fromFlags.NoSystemFonts })
	return profile
}

// newLogger returns a text logger at the named level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
