package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	path       string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// withPath records the file a source was loaded from.
func withPath(path string) SourceOption {
	return func(c *sourceConfig) {
		c.path = path
	}
}

// LibraryOption configures Library creation.
type LibraryOption func(*libraryConfig)

// libraryConfig holds configuration for Library.
type libraryConfig struct {
	systemFonts    bool
	dirs           []string
	sources        []*FontSource
	fallbackFamily string
	sourceOpts     []SourceOption
}

// defaultLibraryConfig returns the default library configuration.
func defaultLibraryConfig() libraryConfig {
	return libraryConfig{
		systemFonts:    true,
		fallbackFamily: BuiltinFamily,
	}
}

// WithDirs adds font directories to scan in addition to the system ones.
func WithDirs(dirs ...string) LibraryOption {
	return func(c *libraryConfig) {
		c.dirs = append(c.dirs, dirs...)
	}
}

// WithoutSystemFonts skips the operating system font directories.
func WithoutSystemFonts() LibraryOption {
	return func(c *libraryConfig) {
		c.systemFonts = false
	}
}

// WithSources registers already loaded font sources.
func WithSources(sources ...*FontSource) LibraryOption {
	return func(c *libraryConfig) {
		c.sources = append(c.sources, sources...)
	}
}

// WithFallbackFamily sets the family used when a request names no family.
// The default is BuiltinFamily.
func WithFallbackFamily(family string) LibraryOption {
	return func(c *libraryConfig) {
		c.fallbackFamily = family
	}
}

// WithSourceOptions sets the options used for every scanned font file.
func WithSourceOptions(opts ...SourceOption) LibraryOption {
	return func(c *libraryConfig) {
		c.sourceOpts = append(c.sourceOpts, opts...)
	}
}
