// Package lcdfont converts typefaces into packed glyph atlases for
// embedded and LCD display firmware.
//
// # Overview
//
// Every character of a managed sequence is rasterized into a fixed-size
// block and the block's pixels are serialized into a device-native
// encoding. The pipeline has three stages:
//
//   - Rasterizer: fills a block with the background colour and draws the
//     glyph mask produced by a [PixelSource] in the foreground colour.
//   - Codec: walks the block row-major or column-major and packs every
//     scan line as Mono, Gray4, RGB565 or RGB565-Packed bytes.
//   - Layout: scroll arithmetic and compositing for browsing a 16-column
//     glyph grid in a preview surface.
//
// # Quick Start
//
//	lib, err := text.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings := lcdfont.DefaultFontSettings()
//	settings.Font = lcdfont.Font{Family: "DejaVu Sans", Size: 12}
//
//	codec, err := lcdfont.NewCodec(lcdfont.ColorMono, lcdfont.ScanRow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyphs, err := lcdfont.Export(ctx, lcdfont.NewRasterizer(lib), &settings, codec)
//
// # Coordinate System
//
// Block and preview coordinates have the origin at the top-left corner,
// X increases right and Y increases down.
package lcdfont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
