package glyphcache

import "github.com/gogpu/glyphcache/provider"

// ResolveMode controls whether ResolveFace may search for a fallback font.
type ResolveMode int

const (
	// ResolveDirect searches for a fallback font when the requested face
	// lacks the glyph.
	ResolveDirect ResolveMode = iota

	// ResolveFallback accepts the requested face as is.
	ResolveFallback
)

// String returns the string representation of the mode.
func (m ResolveMode) String() string {
	switch m {
	case ResolveDirect:
		return "Direct"
	case ResolveFallback:
		return "Fallback"
	default:
		return unknownStr
	}
}

// ResolveFace returns the key of the face that should render gk.
//
// GlyphIndex keys always resolve to their own font. In ResolveDirect mode a
// character missing from the requested face triggers a single matcher query
// for any font covering it; the result is resolved again in
// ResolveFallback mode, which never searches. A *MissingFontError is
// returned when no font covers the character.
func (r *Rasterizer) ResolveFace(gk GlyphKey, mode ResolveMode) (FontKey, error) {
	if _, isIndex := gk.Glyph.Index(); isIndex {
		return gk.Font, nil
	}
	ch, _ := gk.Glyph.Rune()

	if f, ok := r.faces.get(gk.Font); ok {
		if mode == ResolveFallback || f.handle.CharIndex(ch) != 0 {
			return gk.Font, nil
		}
	}
	if mode == ResolveFallback {
		// Unknown keys are only reachable here through a direct call.
		return gk.Font, ErrFontNotLoaded
	}

	key, err := r.fallbackFor(ch)
	if err != nil {
		return FontKey{}, err
	}
	gk.Font = key
	return r.ResolveFace(gk, ResolveFallback)
}

// fallbackFor finds a face covering ch. A cached face takes the fixup factor
// of the new match.
func (r *Rasterizer) fallbackFor(ch rune) (FontKey, error) {
	m, ok := r.matcher.Match(provider.Query{
		Charset:   []rune{ch},
		PixelSize: r.pixelSize,
	})
	if !ok {
		return FontKey{}, &MissingFontError{
			Desc: FontDesc{Family: "no-fallback-for", Style: SpecificStyle(string(ch))},
		}
	}

	if key, ok := r.faces.lookup(location{path: m.Path, index: m.Index}); ok {
		f, _ := r.faces.get(key)
		f.fixupFactor = m.FixupFactor
		Logger().Debug("glyphcache: fallback font cache hit", "path", m.Path, "char", string(ch))
		return key, nil
	}

	Logger().Debug("glyphcache: fallback font cache miss", "path", m.Path, "char", string(ch))
	return r.loadFace(m)
}
