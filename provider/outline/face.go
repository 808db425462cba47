package outline

import (
	"errors"
	"fmt"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcache/internal/sfnttab"
	"github.com/gogpu/glyphcache/provider"
)

// Face is one opened face. It follows the FreeType model: LoadGlyph fills a
// single glyph slot that GlyphMetrics and Render read.
//
// A Face is not safe for concurrent use.
type Face struct {
	font     *gotext.Face
	tabs     *sfnttab.Tables
	upem     float64
	scalable bool

	strikes *sfnttab.Strikes
	strike  int // selected strike, -1 for none

	// ppem is the current size in pixels, 0 before the size is set.
	ppem float64

	slot   slot
	closed bool
}

// slot holds the most recently loaded glyph.
type slot struct {
	loaded  bool
	advance fixed.Int26_6

	segments []gotext.Segment
	bitmap   *sfnttab.StrikeGlyph
}

func (f *Face) strikeCount() int {
	if f.strikes == nil {
		return 0
	}
	return f.strikes.Len()
}

// SetCharSize sets the size in pixels. Faces without outlines select the
// closest bitmap strike instead.
func (f *Face) SetCharSize(px float64) error {
	if f.closed {
		return ErrClosed
	}
	if px <= 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, px)
	}
	if !f.scalable && f.strikes != nil {
		return f.SelectFixedSize(f.strikes.Select(int(math.Round(px))))
	}
	f.ppem = px
	f.strike = -1
	return nil
}

// CharIndex returns the glyph index of r, or 0.
func (f *Face) CharIndex(r rune) uint32 {
	if f.closed {
		return 0
	}
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint32(gid)
}

// LoadGlyph loads glyph index into the slot. A selected strike is used
// unless flags carry LoadNoBitmap.
func (f *Face) LoadGlyph(index uint32, flags provider.LoadFlags) error {
	if f.closed {
		return ErrClosed
	}
	f.slot = slot{}

	if f.strike >= 0 && !flags.Has(provider.LoadNoBitmap) && index <= math.MaxUint16 {
		g, err := f.strikes.Glyph(uint16(index), f.strike)
		switch {
		case err == nil:
			f.slot = slot{loaded: true, bitmap: &g, advance: fixed.I(g.Advance)}
			return nil
		case !errors.Is(err, sfnttab.ErrGlyphNotInStrike) || !f.scalable:
			return err
		}
	}

	if !f.scalable || f.font == nil {
		return fmt.Errorf("%w: %d", ErrGlyphNotFound, index)
	}
	if f.ppem == 0 {
		return fmt.Errorf("%w: size not set", ErrInvalidSize)
	}

	segs, ok := outlineSegments(f.font.GlyphData(gotext.GID(index)))
	if !ok {
		return fmt.Errorf("%w: %d", ErrGlyphNotFound, index)
	}

	adv := fixed.Int26_6(math.Round(float64(f.font.HorizontalAdvance(gotext.GID(index))) * f.scale() * 64))
	if !flags.Has(provider.LoadNoHinting) {
		adv = (adv + 32) &^ 63
	}
	f.slot = slot{loaded: true, segments: segs, advance: adv}
	return nil
}

// outlineSegments extracts the vector outline of any glyph kind.
func outlineSegments(data gotext.GlyphData) ([]gotext.Segment, bool) {
	switch g := data.(type) {
	case gotext.GlyphOutline:
		return g.Segments, true
	case gotext.GlyphBitmap:
		if g.Outline != nil {
			return g.Outline.Segments, true
		}
	case gotext.GlyphSVG:
		return g.Outline.Segments, true
	}
	return nil, false
}

// scale converts font units to pixels.
func (f *Face) scale() float64 { return f.ppem / f.upem }

// GlyphMetrics returns the metrics of the loaded glyph.
func (f *Face) GlyphMetrics() provider.GlyphMetrics {
	return provider.GlyphMetrics{HoriAdvance: f.slot.advance}
}

// Render rasterizes the loaded glyph. Strike glyphs are always BGRA.
func (f *Face) Render(mode provider.RenderMode, cfg provider.RenderConfig) (provider.Bitmap, error) {
	if f.closed {
		return provider.Bitmap{}, ErrClosed
	}
	if !f.slot.loaded {
		return provider.Bitmap{}, ErrNoGlyphLoaded
	}
	if f.slot.bitmap != nil {
		return StrikeBGRA(*f.slot.bitmap)
	}
	return rasterize(f.slot.segments, f.scale(), mode, cfg.LcdFilter), nil
}

// SizeMetrics returns the metrics for the current size, rounded the way
// FreeType rounds scalable metrics.
func (f *Face) SizeMetrics() (provider.SizeMetrics, bool) {
	if f.closed {
		return provider.SizeMetrics{}, false
	}
	if f.strike >= 0 {
		return f.strikeMetrics(), true
	}
	if f.ppem == 0 {
		return provider.SizeMetrics{}, false
	}

	asc, desc, gap, maxAdv := f.extents()
	s := f.scale() * 64
	ascender := fixed.Int26_6(math.Ceil(asc*s/64) * 64)
	descender := fixed.Int26_6(math.Floor(desc*s/64) * 64)
	height := fixed.Int26_6(math.Round((asc-desc+gap)*s/64) * 64)

	ppem := int(math.Round(f.ppem))
	return provider.SizeMetrics{
		XPpem:      ppem,
		YPpem:      ppem,
		XScale:     int32(math.Round(f.ppem * 64 * 65536 / f.upem)),
		Ascender:   ascender,
		Descender:  descender,
		Height:     height,
		MaxAdvance: fixed.Int26_6(math.Round(maxAdv*s/64) * 64),
	}, true
}

// extents returns ascender, descender, line gap and maximum advance in font
// units, from hhea when present.
func (f *Face) extents() (asc, desc, gap, maxAdv float64) {
	if h, ok := f.tabs.Hhea(); ok && (h.Ascender != 0 || h.Descender != 0) {
		return float64(h.Ascender), float64(h.Descender), float64(h.LineGap), float64(h.AdvanceMax)
	}
	if e, ok := f.font.FontHExtents(); ok {
		return float64(e.Ascender), float64(e.Descender), float64(e.LineGap), f.upem
	}
	return f.upem * 0.8, -f.upem * 0.2, 0, f.upem
}

func (f *Face) strikeMetrics() provider.SizeMetrics {
	lm := f.strikes.LineMetrics(f.strike)
	ppem := f.strikes.PPEM(f.strike)
	return provider.SizeMetrics{
		XPpem:      ppem,
		YPpem:      ppem,
		XScale:     int32(math.Round(float64(ppem) * 64 * 65536 / f.upem)),
		Ascender:   fixed.I(int(lm.Ascender)),
		Descender:  fixed.I(int(lm.Descender)),
		Height:     fixed.I(int(lm.Ascender) - int(lm.Descender)),
		MaxAdvance: fixed.I(int(lm.WidthMax)),
	}
}

// HasColor reports whether the face has color bitmap strikes.
func (f *Face) HasColor() bool { return f.strikes != nil }

// SelectFixedSize selects bitmap strike i.
func (f *Face) SelectFixedSize(i int) error {
	if f.closed {
		return ErrClosed
	}
	if f.strikes == nil || i < 0 || i >= f.strikes.Len() {
		return fmt.Errorf("%w: %d of %d", ErrNoStrike, i, f.strikeCount())
	}
	f.strike = i
	f.ppem = float64(f.strikes.PPEM(i))
	return nil
}

// Underline returns the post table underline metrics in font units.
func (f *Face) Underline() (position, thickness int16) {
	p, ok := f.tabs.Post()
	if !ok {
		return 0, 0
	}
	return p.UnderlinePosition, p.UnderlineThickness
}

// OS2 returns the strikeout metrics of the OS/2 table.
func (f *Face) OS2() (provider.OS2, bool) {
	t, ok := f.tabs.OS2()
	if !ok {
		return provider.OS2{}, false
	}
	return provider.OS2{StrikeoutSize: t.YStrikeoutSize, StrikeoutPosition: t.YStrikeoutPosition}, true
}

// Close releases the face. Further calls fail with ErrClosed.
func (f *Face) Close() error {
	f.closed = true
	f.slot = slot{}
	f.font = nil
	f.strikes = nil
	return nil
}
