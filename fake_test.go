package glyphcache

import (
	"errors"
	"slices"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcache/provider"
)

// fakeFont scripts one font file for fakeMatcher and fakeLibrary.
type fakeFont struct {
	family string
	path   string
	index  int
	chars  map[rune]uint32

	scalable   bool
	pixelSizes []float64
	fixup      float64
	color      bool
	attrs      provider.Match // rendering attributes only

	bitmap      provider.Bitmap
	sizeMetrics *provider.SizeMetrics
	underline   [2]int16
	os2         *provider.OS2
	advance     fixed.Int26_6

	badGlyphs map[uint32]bool
	renderErr error
	selectErr error
}

func (f *fakeFont) covers(r rune) bool { return f.chars[r] != 0 }

func (f *fakeFont) match() provider.Match {
	m := f.attrs
	m.Path = f.path
	m.Index = f.index
	m.Scalable = f.scalable
	m.PixelSizes = f.pixelSizes
	m.FixupFactor = f.fixup
	m.Color = f.color
	return m
}

// fakeMatcher answers family queries by name and charset queries with the
// first font covering every rune, or with fallback when set.
type fakeMatcher struct {
	fonts    []*fakeFont
	fallback *fakeFont
	queries  []provider.Query
}

func (m *fakeMatcher) Match(q provider.Query) (provider.Match, bool) {
	m.queries = append(m.queries, q)

	if len(q.Charset) > 0 {
		if m.fallback != nil {
			return m.fallback.match(), true
		}
		for _, f := range m.fonts {
			if slices.IndexFunc(q.Charset, func(r rune) bool { return !f.covers(r) }) < 0 {
				return f.match(), true
			}
		}
		return provider.Match{}, false
	}

	for _, f := range m.fonts {
		if f.family == q.Family {
			return f.match(), true
		}
	}
	return provider.Match{}, false
}

func (m *fakeMatcher) charsetQueries() int {
	n := 0
	for _, q := range m.queries {
		if len(q.Charset) > 0 {
			n++
		}
	}
	return n
}

// fakeLibrary opens fakeFaces for the fonts it knows.
type fakeLibrary struct {
	fonts   map[string]*fakeFont
	loads   []string
	loadErr error
	opened  []*fakeFace
}

func (l *fakeLibrary) Load(path string, index int) (provider.Face, error) {
	l.loads = append(l.loads, path)
	if l.loadErr != nil {
		return nil, l.loadErr
	}
	f, ok := l.fonts[path]
	if !ok || f.index != index {
		return nil, errors.New("no such font")
	}
	face := &fakeFace{font: f}
	l.opened = append(l.opened, face)
	return face, nil
}

type renderCall struct {
	mode provider.RenderMode
	cfg  provider.RenderConfig
}

// fakeFace records every call made on it.
type fakeFace struct {
	font *fakeFont

	charSizes []float64
	loaded    []uint32
	flags     []provider.LoadFlags
	renders   []renderCall
	selected  []int
	closed    bool
}

func (f *fakeFace) SetCharSize(px float64) error {
	f.charSizes = append(f.charSizes, px)
	return nil
}

func (f *fakeFace) CharIndex(r rune) uint32 { return f.font.chars[r] }

func (f *fakeFace) LoadGlyph(index uint32, flags provider.LoadFlags) error {
	f.loaded = append(f.loaded, index)
	f.flags = append(f.flags, flags)
	if f.font.badGlyphs[index] {
		return errors.New("cannot load glyph")
	}
	return nil
}

func (f *fakeFace) GlyphMetrics() provider.GlyphMetrics {
	return provider.GlyphMetrics{HoriAdvance: f.font.advance}
}

func (f *fakeFace) Render(mode provider.RenderMode, cfg provider.RenderConfig) (provider.Bitmap, error) {
	f.renders = append(f.renders, renderCall{mode: mode, cfg: cfg})
	if f.font.renderErr != nil {
		return provider.Bitmap{}, f.font.renderErr
	}
	b := f.font.bitmap
	b.Buffer = slices.Clone(b.Buffer)
	return b, nil
}

func (f *fakeFace) SizeMetrics() (provider.SizeMetrics, bool) {
	if f.font.sizeMetrics == nil {
		return provider.SizeMetrics{}, false
	}
	return *f.font.sizeMetrics, true
}

func (f *fakeFace) HasColor() bool { return f.font.color }

func (f *fakeFace) SelectFixedSize(i int) error {
	f.selected = append(f.selected, i)
	return f.font.selectErr
}

func (f *fakeFace) Underline() (int16, int16) { return f.font.underline[0], f.font.underline[1] }

func (f *fakeFace) OS2() (provider.OS2, bool) {
	if f.font.os2 == nil {
		return provider.OS2{}, false
	}
	return *f.font.os2, true
}

func (f *fakeFace) Close() error {
	f.closed = true
	return nil
}

var monoDesc = FontDesc{Family: "Mono", Style: DescriptiveStyle(SlantNormal, WeightNormal)}

type testEnv struct {
	mono    *fakeFont
	symbols *fakeFont
	emoji   *fakeFont
	matcher *fakeMatcher
	library *fakeLibrary
}

// newTestEnv builds a matcher and library over three fonts: a scalable
// text font, a scalable symbol font and a non-scalable color emoji font.
func newTestEnv() *testEnv {
	mono := &fakeFont{
		family:   "Mono",
		path:     "/fonts/mono.ttf",
		chars:    map[rune]uint32{'A': 36, 'a': 68, '0': 19},
		scalable: true,
		attrs: provider.Match{
			Antialias:      true,
			HintStyle:      provider.HintSlight,
			EmbeddedBitmap: true,
			LcdFilter:      provider.LcdFilterSettingDefault,
		},
		bitmap: provider.Bitmap{
			Mode: provider.PixelModeGray, Width: 2, Rows: 2, Pitch: 2,
			Buffer: []byte{0, 64, 128, 255},
			Left:   1, Top: 11,
		},
		sizeMetrics: &provider.SizeMetrics{
			XPpem: 16, YPpem: 16,
			XScale:     32768,
			Ascender:   15 * 64,
			Descender:  -4 * 64,
			Height:     19 * 64,
			MaxAdvance: 12 * 64,
		},
		underline: [2]int16{-100, 50},
		os2:       &provider.OS2{StrikeoutSize: 40, StrikeoutPosition: 300},
		advance:   10 * 64,
	}
	symbols := &fakeFont{
		family:   "Symbols",
		path:     "/fonts/symbols.ttf",
		chars:    map[rune]uint32{'→': 5, '★': 6},
		scalable: true,
		attrs: provider.Match{
			Antialias:      true,
			HintStyle:      provider.HintFull,
			Geometry:       provider.GeometryRGB,
			EmbeddedBitmap: true,
			LcdFilter:      provider.LcdFilterSettingLight,
		},
		bitmap: provider.Bitmap{
			Mode: provider.PixelModeLCD, Width: 6, Rows: 1, Pitch: 8,
			Buffer: []byte{1, 2, 3, 4, 5, 6, 0, 0},
		},
		sizeMetrics: &provider.SizeMetrics{XPpem: 16, YPpem: 16, XScale: 65536, Height: 18 * 64},
	}
	emoji := &fakeFont{
		family:     "Emoji",
		path:       "/fonts/emoji.ttf",
		chars:      map[rune]uint32{'😀': 1400},
		pixelSizes: []float64{109},
		fixup:      0.5,
		color:      true,
		attrs:      provider.Match{Antialias: true, HintStyle: provider.HintSlight, EmbeddedBitmap: true},
		bitmap:     solidBGRA(4, 4, 10, 20, 30),
		sizeMetrics: &provider.SizeMetrics{
			XPpem: 32, YPpem: 32, XScale: 65536, Height: 40 * 64,
		},
	}
	emoji.bitmap.Top = 8
	emoji.bitmap.Left = 2

	fonts := []*fakeFont{mono, symbols, emoji}
	lib := &fakeLibrary{fonts: make(map[string]*fakeFont)}
	for _, f := range fonts {
		lib.fonts[f.path] = f
	}
	return &testEnv{
		mono:    mono,
		symbols: symbols,
		emoji:   emoji,
		matcher: &fakeMatcher{fonts: fonts},
		library: lib,
	}
}

func (e *testEnv) rasterizer(opts ...Option) *Rasterizer {
	return New(e.matcher, e.library, opts...)
}

// faceFor returns the last opened fake face for path.
func (e *testEnv) faceFor(path string) *fakeFace {
	for i := len(e.library.opened) - 1; i >= 0; i-- {
		if e.library.opened[i].font.path == path {
			return e.library.opened[i]
		}
	}
	return nil
}

// solidBGRA returns a w x h BGRA bitmap filled with one RGB color.
func solidBGRA(w, h int, r, g, b byte) provider.Bitmap {
	buf := make([]byte, 0, w*h*4)
	for i := 0; i < w*h; i++ {
		buf = append(buf, b, g, r, 255)
	}
	return provider.Bitmap{Mode: provider.PixelModeBGRA, Width: w, Rows: h, Pitch: w * 4, Buffer: buf}
}
