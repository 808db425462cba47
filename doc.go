// Package glyphcache resolves fonts and rasterizes glyphs for a text renderer.
//
// # Overview
//
// glyphcache sits between a renderer and two backends described in package
// provider: a font matcher that turns abstract font requests into font files,
// and a font library that loads those files and renders single glyphs. The
// Rasterizer owns the loaded faces, finds fallback fonts for characters the
// primary font lacks, and converts every backend bitmap format into one
// canonical RGB buffer.
//
// # Quick Start
//
//	idx := fontmatch.New()
//	idx.UseSystemFonts()
//
//	r := glyphcache.New(idx, outline.NewLibrary(),
//	    glyphcache.WithDevicePixelRatio(2))
//	defer r.Close()
//
//	desc := glyphcache.FontDesc{
//	    Family: "DejaVu Sans Mono",
//	    Style:  glyphcache.DescriptiveStyle(glyphcache.SlantNormal, glyphcache.WeightNormal),
//	}
//	size := glyphcache.NewSize(11)
//
//	key, err := r.LoadFont(desc, size)
//	if err != nil {
//	    return err
//	}
//	g, err := r.GetGlyph(glyphcache.GlyphKey{Glyph: glyphcache.Char('A'), Font: key, Size: size})
//
// # Output Format
//
// [RasterizedGlyph.Buf] holds Width*Height pixels, row-major, three bytes per
// pixel. Grayscale and monochrome glyphs replicate their coverage into all
// three channels; subpixel glyphs carry per-channel coverage; color glyphs
// carry RGB with alpha dropped.
//
// # Fallback
//
// When the primary font has no glyph for a character, the matcher is asked
// for any font covering it. The fallback search runs at most once per
// request. A character that no installed font covers renders the primary
// font's notdef glyph.
//
// # Thread Safety
//
// Rasterizer and GlyphCache are not safe for concurrent use; callers that
// share one must serialize access. Font keys are allocated from a
// process-wide atomic counter and are unique across Rasterizers.
package glyphcache
