package glyphcache

import "math"

// Downsample shrinks a color glyph by factor using box filtering.
// Factors above 1 return g unchanged: glyphs are never upscaled.
func Downsample(g RasterizedGlyph, factor float64) RasterizedGlyph {
	if factor > 1 {
		return g
	}

	srcW, srcH := g.Width, g.Height
	w := int(float64(srcW) * factor)
	h := int(float64(srcH) * factor)

	if w <= 0 || h <= 0 {
		step := math.MaxInt32
		if factor > 0 && 1/factor < math.MaxInt32 {
			step = int(math.Ceil(1 / factor))
		}
		g.Top = scaledTop(g.Top, factor, step)
		g.Left = int(float64(g.Left) * factor)
		g.Width, g.Height = max(w, 0), max(h, 0)
		g.Buf = nil
		return g
	}

	scale := math.Max(float64(srcW)/float64(w), float64(srcH)/float64(h))
	step := int(math.Ceil(scale))

	out := make([]byte, 0, w*h*3)
	for y, sy := 0, 0; y < h; y, sy = y+1, sy+step {
		endY := min(sy+step, srcH)
		for x, sx := 0, 0; x < w; x, sx = x+1, sx+step {
			endX := min(sx+step, srcW)

			var r, gr, b, n uint32
			for yy := sy; yy < endY; yy++ {
				row := yy * srcW * 3
				for xx := sx; xx < endX; xx++ {
					p := row + xx*3
					r += uint32(g.Buf[p])
					gr += uint32(g.Buf[p+1])
					b += uint32(g.Buf[p+2])
					n++
				}
			}

			if n == 0 {
				out = append(out, 0, 0, 0)
				continue
			}
			out = append(out, byte(r/n), byte(gr/n), byte(b/n))
		}
	}

	g.Top = scaledTop(g.Top, factor, step)
	g.Left = int(float64(g.Left) * factor)
	g.Width, g.Height = w, h
	g.Buf = out
	return g
}

// scaledTop blends the scaled top bearing with top/step.
func scaledTop(top int, factor float64, step int) int {
	return (int(float32(top)*float32(factor)) + top/step) / 2
}
