package glyphcache

import (
	"golang.org/x/image/font"

	"github.com/gogpu/glyphcache/provider"
)

// LoadFont resolves desc at size to a face and returns its key. Requests
// that match an already loaded face return the existing key.
func (r *Rasterizer) LoadFont(desc FontDesc, size Size) (FontKey, error) {
	// Queries and fixup factors use the pixel size at half-point precision.
	px := NewSize(r.toPixels(size)).Pts()

	q := provider.Query{
		Family:    desc.Family,
		PixelSize: px,
	}
	if desc.Style.IsSpecific() {
		q.StyleName = desc.Style.Name()
	} else {
		q.Slant = matchSlant(desc.Style.Slant())
		q.Weight = matchWeight(desc.Style.Weight())
		q.HasAspect = true
	}
	r.pixelSize = px

	m, ok := r.matcher.Match(q)
	if !ok {
		return FontKey{}, &MissingFontError{Desc: desc}
	}

	// Cached faces keep the attributes of their first load.
	if key, ok := r.faces.lookup(location{path: m.Path, index: m.Index}); ok {
		Logger().Debug("glyphcache: font cache hit", "path", m.Path, "key", key.String())
		return key, nil
	}
	return r.loadFace(m)
}

// loadFace opens the matched face and adds it to the cache.
func (r *Rasterizer) loadFace(m provider.Match) (FontKey, error) {
	handle, err := r.library.Load(m.Path, m.Index)
	if err != nil {
		return FontKey{}, &BackendError{Op: "load", Path: m.Path, Err: err}
	}

	f := &face{
		handle:      handle,
		key:         NextFontKey(),
		loc:         location{path: m.Path, index: m.Index},
		loadFlags:   loadFlags(m),
		renderMode:  renderMode(m),
		lcdFilter:   lcdFilter(m.LcdFilter),
		hasColor:    handle.HasColor(),
		fixupFactor: m.FixupFactor,
	}
	if !m.Scalable && len(m.PixelSizes) > 0 {
		f.fixedSize = m.PixelSizes[0]
	}
	if f.hasColor {
		if err := handle.SelectFixedSize(0); err != nil {
			_ = handle.Close()
			return FontKey{}, &BackendError{Op: "select strike", Path: m.Path, Err: err}
		}
	}

	r.faces.insert(f)
	Logger().Debug("glyphcache: loaded face",
		"path", f.loc.String(),
		"key", f.key.String(),
		"fixed_size", f.fixedSize,
		"color", f.hasColor,
		"render_mode", f.renderMode.String())
	return f.key, nil
}

func matchSlant(s Slant) font.Style {
	switch s {
	case SlantItalic:
		return font.StyleItalic
	case SlantOblique:
		return font.StyleOblique
	default:
		return font.StyleNormal
	}
}

func matchWeight(w Weight) font.Weight {
	if w == WeightBold {
		return font.WeightBold
	}
	return font.WeightNormal
}
