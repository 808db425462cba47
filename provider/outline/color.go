package outline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/gogpu/glyphcache/internal/sfnttab"
	"github.com/gogpu/glyphcache/provider"
)

// StrikeBGRA decodes an embedded PNG glyph to a premultiplied BGRA bitmap.
// The bitmap size is taken from the image itself.
func StrikeBGRA(g sfnttab.StrikeGlyph) (provider.Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(g.Data))
	if err != nil {
		return provider.Bitmap{}, fmt.Errorf("outline: decode strike image: %w", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	buf := rgba.Pix
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i], buf[i+2] = buf[i+2], buf[i]
	}
	return provider.Bitmap{
		Mode:   provider.PixelModeBGRA,
		Width:  b.Dx(),
		Rows:   b.Dy(),
		Pitch:  rgba.Stride,
		Buffer: buf,
		Left:   g.BearingX,
		Top:    g.BearingY,
	}, nil
}
