// Package outline implements provider.Library on top of pure Go font
// parsing and scanline rasterization.
//
// Outlines are read with go-text/typesetting and filled with
// golang.org/x/image/vector. Color emoji are taken from CBLC/CBDT bitmap
// strikes and returned as BGRA bitmaps. Hinting instructions are not
// executed; hinted load targets only snap advances to whole pixels.
package outline

import (
	"errors"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/internal/sfnttab"
	"github.com/gogpu/glyphcache/provider"
)

// Errors returned by faces.
var (
	// ErrNoGlyphLoaded is returned by Render before a successful LoadGlyph.
	ErrNoGlyphLoaded = errors.New("outline: no glyph loaded")

	// ErrGlyphNotFound is returned when the font has no data for a glyph index.
	ErrGlyphNotFound = errors.New("outline: glyph not found")

	// ErrInvalidSize is returned for non-positive character sizes.
	ErrInvalidSize = errors.New("outline: invalid character size")

	// ErrNoStrike is returned when a bitmap strike index does not exist.
	ErrNoStrike = errors.New("outline: no such bitmap strike")

	// ErrClosed is returned by faces after Close.
	ErrClosed = errors.New("outline: face closed")
)

// Library opens font files from disk.
type Library struct{}

// NewLibrary creates a Library.
func NewLibrary() *Library { return &Library{} }

// Load opens face index of the font file at path.
func (l *Library) Load(path string, index int) (provider.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := newFace(data, index)
	if err != nil {
		return nil, fmt.Errorf("outline: %s: %w", path, err)
	}
	glyphcache.Logger().Debug("outline: opened face",
		"path", path,
		"index", index,
		"upem", f.upem,
		"scalable", f.scalable,
		"strikes", f.strikeCount())
	return f, nil
}

func newFace(data []byte, index int) (*Face, error) {
	tabs, err := sfnttab.Parse(data, index)
	if err != nil {
		return nil, err
	}
	ft, err := gotext.NewFont(tabs.Loader())
	if err != nil {
		return nil, err
	}
	face := gotext.NewFace(ft)

	f := &Face{
		font:     face,
		tabs:     tabs,
		upem:     float64(face.Upem()),
		scalable: tabs.Scalable(),
		strike:   -1,
	}
	if f.upem == 0 {
		f.upem = 1000
	}
	if s, err := tabs.Strikes(); err == nil && s.Len() > 0 {
		f.strikes = s
	}
	return f, nil
}
