package glyphcache

import "math"

// Metrics computes the line metrics of the face key at size.
//
// Faces without underline metrics (position 0, common in bitmap fonts) get
// an underline derived from the descent. Faces without an OS/2 table get a
// strikeout centered on the line.
func (r *Rasterizer) Metrics(key FontKey, size Size) (Metrics, error) {
	f, ok := r.faces.get(key)
	if !ok {
		return Metrics{}, ErrFontNotLoaded
	}

	if !f.hasColor && f.fixedSize == 0 {
		if err := f.handle.SetCharSize(r.toPixels(size)); err != nil {
			return Metrics{}, &BackendError{Op: "set char size", Path: f.loc.path, Err: err}
		}
	}

	sm, ok := f.handle.SizeMetrics()
	if !ok {
		return Metrics{}, ErrMissingSizeMetrics
	}

	lineHeight := float64(sm.Height / 64)
	descent := float32(sm.Descender / 64)
	xScale := float32(sm.XScale) / 65536

	rawPos, rawThick := f.handle.Underline()
	underlinePos := float32(rawPos) * xScale / 64
	underlineThick := float32(rawThick) * xScale / 64
	if rawPos == 0 {
		underlineThick = float32(math.Round(float64(descent / 5)))
		underlinePos = descent / 2
	}

	var strikePos, strikeThick float32
	if os2, ok := f.handle.OS2(); ok {
		strikePos = float32(os2.StrikeoutPosition) * xScale / 64
		strikeThick = float32(os2.StrikeoutSize) * xScale / 64
	} else {
		Logger().Debug("glyphcache: no OS/2 table, using fallback strikeout metrics", "path", f.loc.path)
		strikePos = float32(lineHeight)/2 + descent
		strikeThick = underlineThick
	}

	advance := float64(sm.MaxAdvance / 64)
	if err := f.handle.LoadGlyph(f.handle.CharIndex('0'), f.loadFlags); err == nil {
		advance = float64(f.handle.GlyphMetrics().HoriAdvance / 64)
	}

	return Metrics{
		AverageAdvance:     advance,
		LineHeight:         lineHeight,
		Descent:            descent,
		UnderlinePosition:  underlinePos,
		UnderlineThickness: underlineThick,
		StrikeoutPosition:  strikePos,
		StrikeoutThickness: strikeThick,
	}, nil
}
