package glyphcache

import (
	"errors"

	"github.com/gogpu/glyphcache/provider"
)

// Rasterizer loads fonts through a matcher and a library and renders glyphs
// into canonical RGB bitmaps.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	matcher provider.Matcher
	library provider.Library
	faces   *faceCache

	devicePixelRatio float64
	dpi              float64

	// pixelSize is the pixel size of the most recent LoadFont request.
	// Fallback queries and fixup factors are computed against it.
	pixelSize float64
}

// New creates a Rasterizer backed by matcher and library.
func New(matcher provider.Matcher, library provider.Library, opts ...Option) *Rasterizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Rasterizer{
		matcher:          matcher,
		library:          library,
		faces:            newFaceCache(),
		devicePixelRatio: cfg.devicePixelRatio,
		dpi:              cfg.dpi,
	}
}

// DevicePixelRatio returns the current device pixel ratio.
func (r *Rasterizer) DevicePixelRatio() float64 { return r.devicePixelRatio }

// UpdateDevicePixelRatio changes the ratio used for future size conversions.
// Loaded faces and their keys stay valid.
func (r *Rasterizer) UpdateDevicePixelRatio(ratio float64) {
	r.devicePixelRatio = ratio
}

// FaceCount returns the number of loaded faces.
func (r *Rasterizer) FaceCount() int { return r.faces.len() }

// Close releases every loaded face. Keys issued before Close are never
// reissued.
func (r *Rasterizer) Close() error {
	return r.faces.closeAll()
}

// toPixels converts a point size to device pixels.
func (r *Rasterizer) toPixels(s Size) float64 {
	return s.Pts() * r.devicePixelRatio * r.dpi / 72
}

// GetGlyph rasterizes one glyph. Characters missing from the requested font
// are taken from a fallback font; when no font covers the character the
// primary font's notdef glyph is rendered.
func (r *Rasterizer) GetGlyph(gk GlyphKey) (RasterizedGlyph, error) {
	if _, ok := r.faces.get(gk.Font); !ok {
		return RasterizedGlyph{}, ErrFontNotLoaded
	}

	key, err := r.ResolveFace(gk, ResolveDirect)
	if err != nil {
		var missing *MissingFontError
		if !errors.As(err, &missing) {
			return RasterizedGlyph{}, err
		}
		Logger().Debug("glyphcache: no fallback font, using notdef",
			"glyph", gk.Glyph.String(), "font", gk.Font.String())
		key = gk.Font
	}

	f, _ := r.faces.get(key)
	return r.render(f, gk)
}

func (r *Rasterizer) render(f *face, gk GlyphKey) (RasterizedGlyph, error) {
	index, isIndex := gk.Glyph.Index()
	if !isIndex {
		ch, _ := gk.Glyph.Rune()
		index = f.handle.CharIndex(ch)
	}

	if !f.hasColor {
		px := f.fixedSize
		if px == 0 {
			px = r.toPixels(gk.Size)
		}
		if err := f.handle.SetCharSize(px); err != nil {
			return RasterizedGlyph{}, &BackendError{Op: "set char size", Path: f.loc.path, Err: err}
		}
	}

	var cfg provider.RenderConfig
	if !f.hasColor {
		cfg.LcdFilter = f.lcdFilter
	}

	if err := f.handle.LoadGlyph(index, f.loadFlags); err != nil {
		return RasterizedGlyph{}, &BackendError{Op: "load glyph", Path: f.loc.path, Err: err}
	}
	bm, err := f.handle.Render(f.renderMode, cfg)
	if err != nil {
		return RasterizedGlyph{}, &BackendError{Op: "render glyph", Path: f.loc.path, Err: err}
	}

	w, h, buf, err := NormalizeBitmap(bm)
	if err != nil {
		return RasterizedGlyph{}, err
	}

	g := RasterizedGlyph{
		Glyph:   gk.Glyph,
		Width:   w,
		Height:  h,
		Top:     bm.Top,
		Left:    bm.Left,
		Colored: f.hasColor,
		Buf:     buf,
	}
	if !f.hasColor {
		return g, nil
	}
	return Downsample(g, r.fixupFactor(f, h)), nil
}

// fixupFactor returns the face's stored factor, or derives one from the
// selected strike when the matcher did not provide it.
func (r *Rasterizer) fixupFactor(f *face, height int) float64 {
	if f.fixupFactor != 0 {
		return f.fixupFactor
	}
	if sm, ok := f.handle.SizeMetrics(); ok && sm.YPpem != 0 {
		return r.pixelSize / float64(sm.YPpem)
	}
	return r.pixelSize / float64(height)
}
