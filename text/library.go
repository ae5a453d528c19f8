package text

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/lcdfont"
	"github.com/gogpu/lcdfont/internal/cache"
)

// BuiltinFamily is the family name of the embedded Go fonts, always
// available regardless of installed fonts.
const BuiltinFamily = "Go"

// faceCacheLimit bounds the number of live rasterizing faces. Evicted
// faces are left to the garbage collector.
const faceCacheLimit = 64

// fontExts are the file extensions scanned for fonts.
var fontExts = map[string]bool{".ttf": true, ".otf": true, ".ttc": true, ".otc": true}

// libraryKey identifies a face by normalized family and style.
type libraryKey struct {
	family string
	style  lcdfont.Style
}

// faceKey identifies a cached rasterizing face.
type faceKey struct {
	source  *FontSource
	size    float64
	hinting font.Hinting
}

// faceEntry serializes access to a face, which is not safe for
// concurrent use.
type faceEntry struct {
	mu   sync.Mutex
	face font.Face
}

// Library indexes font sources by family and style and renders glyph
// masks from them. It implements lcdfont.PixelSource.
//
// Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	sources  map[libraryKey]*FontSource
	families map[string]string // normalized -> display name

	faces *cache.Cache[faceKey, *faceEntry]

	fallbackFamily string
}

var _ lcdfont.PixelSource = (*Library)(nil)

// NewLibrary creates a Library holding the built-in Go fonts, the fonts in
// the operating system font directories and any extra directories or
// sources given as options. Unreadable font files are logged and skipped.
func NewLibrary(opts ...LibraryOption) (*Library, error) {
	config := defaultLibraryConfig()
	for _, opt := range opts {
		opt(&config)
	}

	l := &Library{
		sources:        make(map[libraryKey]*FontSource),
		families:       make(map[string]string),
		faces:          cache.New[faceKey, *faceEntry](faceCacheLimit),
		fallbackFamily: config.fallbackFamily,
	}

	for _, data := range [][]byte{goregular.TTF, goitalic.TTF, gobold.TTF, gobolditalic.TTF} {
		src, err := NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("text: builtin font: %w", err)
		}
		l.Add(src)
	}

	dirs := config.dirs
	if config.systemFonts {
		dirs = append(SystemFontDirs(), dirs...)
	}
	for _, dir := range dirs {
		l.scanDir(dir, config.sourceOpts)
	}

	for _, src := range config.sources {
		l.Add(src)
	}

	lcdfont.Logger().Info("text: font library ready", "families", len(l.families), "faces", len(l.sources))
	return l, nil
}

// SystemFontDirs returns the font directories of the current platform.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		dirs := []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

// scanDir loads every font file under dir.
func (l *Library) scanDir(dir string, opts []SourceOption) {
	logger := lcdfont.Logger()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil || d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !fontExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if err := l.AddFile(path, opts...); err != nil {
			logger.Warn("text: skipping font file", "path", path, "err", err)
		}
		return nil
	})
	if err != nil {
		logger.Debug("text: font dir not scanned", "dir", dir, "err", err)
	}
}

// AddFile loads every font in the file at path and adds it.
func (l *Library) AddFile(path string, opts ...SourceOption) error {
	// #nosec G304 -- Font file path comes from a font directory walk or the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("text: failed to read font file: %w", err)
	}
	sources, err := NewFontSources(data, append(opts, withPath(path))...)
	if err != nil {
		return err
	}
	for _, src := range sources {
		l.Add(src)
	}
	return nil
}

// Add registers src under its family and style. When two sources share a
// family and style, the one whose subfamily name is the canonical style
// name wins (e.g. "Bold" over "Semibold").
func (l *Library) Add(src *FontSource) {
	key := libraryKey{family: normalizeFamily(src.Family()), style: src.Style()}

	l.mu.Lock()
	defer l.mu.Unlock()

	if old, ok := l.sources[key]; ok {
		if isCanonicalStyle(old) || !isCanonicalStyle(src) {
			return
		}
	}
	l.sources[key] = src
	if _, ok := l.families[key.family]; !ok {
		l.families[key.family] = src.Family()
	}
}

// Families returns the display names of all known families, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.families))
	for _, name := range l.families {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names
}

// Styles returns the styles installed for family.
func (l *Library) Styles(family string) []lcdfont.Style {
	norm := normalizeFamily(family)

	l.mu.RLock()
	defer l.mu.RUnlock()

	var styles []lcdfont.Style
	for _, st := range []lcdfont.Style{lcdfont.StyleRegular, lcdfont.StyleItalic, lcdfont.StyleBold, lcdfont.StyleBoldItalic} {
		if _, ok := l.sources[libraryKey{family: norm, style: st}]; ok {
			styles = append(styles, st)
		}
	}
	return styles
}

// Match is the result of a Lookup: the source to render and the style
// traits that must be synthesized because no exact face exists.
type Match struct {
	Source     *FontSource
	FauxBold   bool
	FauxItalic bool
}

// Lookup finds the face for family and style. An empty family selects the
// fallback family. A missing style variant falls back to the regular face
// (or any face of the family) with the missing traits marked as faux.
func (l *Library) Lookup(family string, style lcdfont.Style) (Match, error) {
	if strings.TrimSpace(family) == "" {
		family = l.fallbackFamily
	}
	norm := normalizeFamily(family)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if src, ok := l.sources[libraryKey{family: norm, style: style}]; ok {
		return Match{Source: src}, nil
	}

	candidates := []lcdfont.Style{lcdfont.StyleRegular}
	if style == lcdfont.StyleBoldItalic {
		candidates = []lcdfont.Style{lcdfont.StyleBold, lcdfont.StyleItalic, lcdfont.StyleRegular}
	}
	candidates = append(candidates, lcdfont.StyleRegular, lcdfont.StyleItalic, lcdfont.StyleBold, lcdfont.StyleBoldItalic)
	for _, st := range candidates {
		src, ok := l.sources[libraryKey{family: norm, style: st}]
		if !ok {
			continue
		}
		m := Match{
			Source:     src,
			FauxBold:   style.IsBold() && !st.IsBold(),
			FauxItalic: style.IsItalic() && !st.IsItalic(),
		}
		if m.FauxBold || m.FauxItalic {
			lcdfont.Logger().Debug("text: synthesizing style", "family", family, "want", style, "have", st)
		}
		return m, nil
	}
	return Match{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
}

// face returns the cached rasterizing face for src at size and hinting.
func (l *Library) face(src *FontSource, size float64, hinting font.Hinting) (*faceEntry, error) {
	key := faceKey{source: src, size: size, hinting: hinting}
	return l.faces.GetOrCreate(key, func() (*faceEntry, error) {
		f, err := src.Parsed().NewFace(size, hinting)
		if err != nil {
			return nil, err
		}
		return &faceEntry{face: f}, nil
	})
}

// Close releases all cached faces. The Library remains usable; faces are
// recreated on demand.
func (l *Library) Close() error {
	for _, e := range l.faces.Clear() {
		e.mu.Lock()
		_ = e.face.Close()
		e.mu.Unlock()
	}
	return nil
}

// normalizeFamily folds case and whitespace for family comparisons.
func normalizeFamily(family string) string {
	return strings.Join(strings.Fields(strings.ToLower(family)), " ")
}

// isCanonicalStyle reports whether the source's subfamily is exactly the
// name of its style.
func isCanonicalStyle(src *FontSource) bool {
	sub := strings.ToLower(strings.Join(strings.Fields(src.Subfamily()), ""))
	switch src.Style() {
	case lcdfont.StyleRegular:
		return sub == "regular" || sub == "" || sub == "book" || sub == "normal"
	case lcdfont.StyleItalic:
		return sub == "italic" || sub == "oblique"
	case lcdfont.StyleBold:
		return sub == "bold"
	default:
		return sub == "bolditalic" || sub == "boldoblique"
	}
}
