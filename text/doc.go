// Package text is the glyph pixel source for lcdfont.
//
// It discovers installed typefaces, parses them with
// golang.org/x/image/font/opentype and renders single characters into
// block-sized coverage masks:
//
//   - FontSource: a parsed TTF/OTF font (or one member of a TTC collection)
//   - Library: an index of font sources by family and style; implements
//     lcdfont.PixelSource
//   - Coverage: glyph presence checks backed by go-text/typesetting
//
// # Example usage
//
//	lib, err := text.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := lcdfont.NewRasterizer(lib)
//	block, err := r.Rasterize(&settings, 'A')
//
// # Styles
//
// When a family has no face for the requested style, the regular face is
// used and the missing traits are synthesized: bold by widening the mask
// one pixel, italic by shearing it.
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface, so an
// alternative backend can be registered with RegisterParser and selected
// with WithParser.
package text
