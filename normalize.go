package glyphcache

import (
	"fmt"

	"github.com/gogpu/glyphcache/provider"
)

// NormalizeBitmap converts a rendered bitmap to packed RGB, three bytes per
// pixel. It returns the pixel dimensions of the result.
//
// Subpixel bitmaps keep their per-channel coverage. Mono and gray coverage
// is replicated into all three channels. BGRA color drops alpha.
func NormalizeBitmap(b provider.Bitmap) (width, height int, buf []byte, err error) {
	pitch := b.Pitch
	if pitch < 0 {
		pitch = -pitch
	}

	switch b.Mode {
	case provider.PixelModeLCD:
		if err := checkBuffer(b, pitch, b.Width); err != nil {
			return 0, 0, nil, err
		}
		width, height = b.Width/3, b.Rows
		buf = make([]byte, 0, width*3*height)
		for i := 0; i < b.Rows; i++ {
			start := i * pitch
			buf = append(buf, b.Buffer[start:start+width*3]...)
		}
		return width, height, buf, nil

	case provider.PixelModeLCDV:
		if err := checkBuffer(b, pitch, b.Width); err != nil {
			return 0, 0, nil, err
		}
		width, height = b.Width, b.Rows/3
		buf = make([]byte, 0, width*3*height)
		for i := 0; i < height; i++ {
			for j := 0; j < width; j++ {
				for k := 0; k < 3; k++ {
					buf = append(buf, b.Buffer[(i*3+k)*pitch+j])
				}
			}
		}
		return width, height, buf, nil

	case provider.PixelModeMono:
		if err := checkBuffer(b, pitch, (b.Width+7)/8); err != nil {
			return 0, 0, nil, err
		}
		buf = make([]byte, 0, b.Width*3*b.Rows)
		for i := 0; i < b.Rows; i++ {
			row := b.Buffer[i*pitch:]
			for col := 0; col < b.Width; col += 8 {
				buf = unpackMono(buf, row[col/8], min(8, b.Width-col))
			}
		}
		return b.Width, b.Rows, buf, nil

	case provider.PixelModeGray:
		if err := checkBuffer(b, pitch, b.Width); err != nil {
			return 0, 0, nil, err
		}
		buf = make([]byte, 0, b.Width*3*b.Rows)
		for i := 0; i < b.Rows; i++ {
			for _, v := range b.Buffer[i*pitch : i*pitch+b.Width] {
				buf = append(buf, v, v, v)
			}
		}
		return b.Width, b.Rows, buf, nil

	case provider.PixelModeBGRA:
		if pitch == 0 {
			pitch = b.Width * 4
		}
		if err := checkBuffer(b, pitch, b.Width*4); err != nil {
			return 0, 0, nil, err
		}
		buf = make([]byte, 0, b.Width*3*b.Rows)
		for i := 0; i < b.Rows; i++ {
			row := b.Buffer[i*pitch : i*pitch+b.Width*4]
			for px := 0; px < len(row); px += 4 {
				buf = append(buf, row[px+2], row[px+1], row[px])
			}
		}
		return b.Width, b.Rows, buf, nil

	default:
		return 0, 0, nil, &UnsupportedPixelModeError{Mode: b.Mode}
	}
}

// unpackMono appends count pixels from the high bits of v.
func unpackMono(dst []byte, v byte, count int) []byte {
	for bit := 7; count > 0; bit, count = bit-1, count-1 {
		c := ((v >> uint(bit)) & 1) * 255
		dst = append(dst, c, c, c)
	}
	return dst
}

// checkBuffer verifies that b.Buffer holds Rows rows of rowBytes at pitch.
func checkBuffer(b provider.Bitmap, pitch, rowBytes int) error {
	if b.Width < 0 || b.Rows < 0 {
		return fmt.Errorf("%w: %s bitmap %dx%d", ErrInvalidBitmap, b.Mode, b.Width, b.Rows)
	}
	if b.Rows == 0 || rowBytes == 0 {
		return nil
	}
	if pitch < rowBytes || (b.Rows-1)*pitch+rowBytes > len(b.Buffer) {
		return fmt.Errorf("%w: %s bitmap %dx%d pitch %d with %d bytes",
			ErrInvalidBitmap, b.Mode, b.Width, b.Rows, b.Pitch, len(b.Buffer))
	}
	return nil
}
