package glyphcache

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphcache/provider"
)

// Sentinel errors.
var (
	// ErrFontNotLoaded is returned when a FontKey does not belong to the Rasterizer.
	ErrFontNotLoaded = errors.New("glyphcache: font not loaded")

	// ErrMissingSizeMetrics is returned when a face has no size metrics.
	ErrMissingSizeMetrics = errors.New("glyphcache: face has no size metrics")

	// ErrInvalidBitmap is returned when a rendered bitmap's buffer does not
	// match its dimensions.
	ErrInvalidBitmap = errors.New("glyphcache: invalid bitmap")
)

// MissingFontError is returned when the matcher finds no font for a request.
// Callers are expected to substitute a default font.
type MissingFontError struct {
	Desc FontDesc
}

func (e *MissingFontError) Error() string {
	return fmt.Sprintf("glyphcache: no font matches %s", e.Desc)
}

// BackendError wraps a failure of the font library.
type BackendError struct {
	Op   string
	Path string
	Err  error
}

func (e *BackendError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("glyphcache: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("glyphcache: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// UnsupportedPixelModeError is returned when the library renders a bitmap
// in a pixel mode the normalizer cannot convert.
type UnsupportedPixelModeError struct {
	Mode provider.PixelMode
}

func (e *UnsupportedPixelModeError) Error() string {
	return fmt.Sprintf("glyphcache: unsupported pixel mode %s", e.Mode)
}
