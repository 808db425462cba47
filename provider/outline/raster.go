package outline

import (
	"image"
	"math"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphcache/provider"
)

// placement maps font units to rasterizer coordinates.
type placement struct {
	scale   float64
	sx, sy  float64 // oversampling per axis
	originX float64 // pixel column of bitmap x = 0
	originY float64 // pixel row of bitmap y = 0, y down
}

func (p placement) at(sp ot.SegmentPoint) (float32, float32) {
	x := (float64(sp.X)*p.scale - p.originX) * p.sx
	y := (-float64(sp.Y)*p.scale - p.originY) * p.sy
	return float32(x), float32(y)
}

// bounds returns the pixel bounding box of segs, y down.
func bounds(segs []gotext.Segment, scale float64) (x0, y0, x1, y1 int, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range segs {
		for _, a := range segs[i].ArgsSlice() {
			x, y := float64(a.X)*scale, -float64(a.Y)*scale
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if minX > maxX {
		return 0, 0, 0, 0, false
	}
	x0, y0 = int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 = int(math.Ceil(maxX)), int(math.Ceil(maxY))
	return x0, y0, x1, y1, x1 > x0 && y1 > y0
}

// rasterize renders segs, given in font units, at scale pixels per unit.
// Subpixel modes are rendered at triple resolution along their axis and
// filtered with filter.
func rasterize(segs []gotext.Segment, scale float64, mode provider.RenderMode, filter provider.LcdFilter) provider.Bitmap {
	out := provider.Bitmap{Mode: pixelMode(mode)}
	x0, y0, x1, y1, ok := bounds(segs, scale)
	if !ok {
		return out
	}

	pad := 0
	if filter != provider.LcdFilterNone {
		pad = 1
	}
	p := placement{scale: scale, sx: 1, sy: 1}
	switch mode {
	case provider.RenderLCD:
		x0, x1 = x0-pad, x1+pad
		p.sx = 3
	case provider.RenderLCDV:
		y0, y1 = y0-pad, y1+pad
		p.sy = 3
	}
	p.originX, p.originY = float64(x0), float64(y0)

	w := (x1 - x0) * int(p.sx)
	h := (y1 - y0) * int(p.sy)
	cov := fill(segs, p, w, h)

	out.Left, out.Top = x0, -y0
	out.Width, out.Rows = w, h
	switch mode {
	case provider.RenderMono:
		out.Pitch, out.Buffer = packMono(cov, w, h)
	case provider.RenderLCD:
		for y := 0; y < h; y++ {
			filterLine(cov[y*w:(y+1)*w], 1, filter)
		}
		out.Pitch = (w + 3) &^ 3
		out.Buffer = restride(cov, w, h, out.Pitch)
	case provider.RenderLCDV:
		for x := 0; x < w; x++ {
			filterLine(cov[x:], w, filter)
		}
		out.Pitch, out.Buffer = w, cov
	default:
		out.Pitch, out.Buffer = w, cov
	}
	return out
}

func pixelMode(mode provider.RenderMode) provider.PixelMode {
	switch mode {
	case provider.RenderMono:
		return provider.PixelModeMono
	case provider.RenderLCD:
		return provider.PixelModeLCD
	case provider.RenderLCDV:
		return provider.PixelModeLCDV
	default:
		return provider.PixelModeGray
	}
}

// fill scan-converts the outline into a w×h coverage buffer.
func fill(segs []gotext.Segment, p placement, w, h int) []byte {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	open := false
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p.at(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(p.at(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := p.at(s.Args[0])
			cx, cy := p.at(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := p.at(s.Args[0])
			cx, cy := p.at(s.Args[1])
			dx, dy := p.at(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}

// packMono thresholds coverage into 1 bit per pixel, most significant bit
// first, with rows padded to 16 bits.
func packMono(cov []byte, w, h int) (int, []byte) {
	pitch := ((w + 15) >> 4) << 1
	buf := make([]byte, pitch*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cov[y*w+x] >= 128 {
				buf[y*pitch+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return pitch, buf
}

func restride(src []byte, w, h, pitch int) []byte {
	if pitch == w {
		return src
	}
	buf := make([]byte, pitch*h)
	for y := 0; y < h; y++ {
		copy(buf[y*pitch:], src[y*w:(y+1)*w])
	}
	return buf
}

// FIR weights of the five-tap filters, summing to 256.
var (
	firDefault = [5]int{0x08, 0x4D, 0x56, 0x4D, 0x08}
	firLight   = [5]int{0x00, 0x55, 0x56, 0x55, 0x00}
)

// Intra-pixel weights of the legacy filter, in 16.16 fixed point.
var legacyWeights = [3][3]int{
	{65538 * 9 / 13, 65538 * 1 / 6, 65538 * 1 / 13},
	{65538 * 3 / 13, 65538 * 4 / 6, 65538 * 3 / 13},
	{65538 * 1 / 13, 65538 * 1 / 6, 65538 * 9 / 13},
}

// filterLine filters the subpixels line[0], line[stride], ... in place.
// The line length is derived from len(line) and stride.
func filterLine(line []byte, stride int, filter provider.LcdFilter) {
	n := (len(line) + stride - 1) / stride
	switch filter {
	case provider.LcdFilterDefault:
		fir(line, stride, n, &firDefault)
	case provider.LcdFilterLight:
		fir(line, stride, n, &firLight)
	case provider.LcdFilterLegacy:
		legacy(line, stride, n)
	}
}

func fir(line []byte, stride, n int, weights *[5]int) {
	src := make([]int, n)
	for i := range src {
		src[i] = int(line[i*stride])
	}
	for i := 0; i < n; i++ {
		sum := 0
		for k, wt := range weights {
			j := i + k - 2
			if j >= 0 && j < n {
				sum += wt * src[j]
			}
		}
		line[i*stride] = byte(min(sum>>8, 255))
	}
}

func legacy(line []byte, stride, n int) {
	for i := 0; i+2 < n; i += 3 {
		var rgb [3]int
		for k := 0; k < 3; k++ {
			v := int(line[(i+k)*stride])
			for c := 0; c < 3; c++ {
				rgb[c] += legacyWeights[k][c] * v
			}
		}
		for c := 0; c < 3; c++ {
			line[(i+c)*stride] = byte(min(rgb[c]>>16, 255))
		}
	}
}
