// Package provider defines the contract between the glyph engine and its two
// external services: a font-matching backend that resolves an abstract font
// request to a concrete font file, and an outline-rendering backend that
// loads that file and rasterizes single glyphs.
//
// The enumerations in this package mirror the vocabulary of system font
// configuration (hint styles, subpixel geometry, LCD filters) and of
// FreeType-style renderers (load flags, render modes, pixel modes), so that
// backends built on either world can implement the interfaces directly.
//
// Default implementations live in the fontmatch and outline sub-packages.
package provider

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Matcher resolves font queries to concrete font files.
type Matcher interface {
	// Match returns the best font for q. The second result is false when
	// nothing matches, including when q.Charset is not covered.
	Match(q Query) (Match, bool)
}

// Library opens faces from font files.
type Library interface {
	// Load opens face index of the font file at path.
	Load(path string, index int) (Face, error)
}

// Face is one loaded face. Glyph state follows the FreeType model: LoadGlyph
// fills the face's glyph slot, GlyphMetrics and Render read from it.
type Face interface {
	// SetCharSize sets the nominal size of the face in pixels.
	SetCharSize(px float64) error

	// CharIndex maps a character to a glyph index. 0 means not covered.
	CharIndex(r rune) uint32

	// LoadGlyph loads glyph index into the glyph slot.
	LoadGlyph(index uint32, flags LoadFlags) error

	// GlyphMetrics returns the metrics of the glyph in the slot.
	GlyphMetrics() GlyphMetrics

	// Render rasterizes the glyph in the slot.
	Render(mode RenderMode, cfg RenderConfig) (Bitmap, error)

	// SizeMetrics returns the scaled metrics for the current size.
	// The second result is false when the face has no size selected.
	SizeMetrics() (SizeMetrics, bool)

	// HasColor reports whether the face carries color glyphs.
	HasColor() bool

	// SelectFixedSize selects bitmap strike i of a non-scalable face.
	SelectFixedSize(i int) error

	// Underline returns the raw post table underline metrics in font units.
	Underline() (position, thickness int16)

	// OS2 returns the strikeout metrics of the OS/2 table, if present.
	OS2() (OS2, bool)

	// Close releases the face.
	Close() error
}

// Query is an abstract font request.
type Query struct {
	// Family is the requested family name.
	Family string

	// StyleName requests a specific named style ("Bold Italic").
	// When empty, Slant and Weight describe the style.
	StyleName string

	Slant  font.Style
	Weight font.Weight

	// HasAspect is set when Slant and Weight are meaningful.
	HasAspect bool

	// PixelSize is the requested size in device pixels.
	PixelSize float64

	// Charset, when non-empty, restricts matches to fonts covering every rune.
	Charset []rune
}

// Match is a concrete font selected by a Matcher together with the rendering
// attributes configured for it.
type Match struct {
	Path  string
	Index int

	// Scalable is false for bitmap-only fonts.
	Scalable bool

	// PixelSizes lists the discrete strike sizes of a non-scalable font.
	PixelSizes []float64

	// FixupFactor scales glyphs of non-scalable fonts to the requested
	// pixel size. 0 means unknown.
	FixupFactor float64

	Antialias      bool
	HintStyle      HintStyle
	Geometry       SubpixelGeometry
	EmbeddedBitmap bool
	Color          bool
	LcdFilter      LcdFilterSetting
}

// GlyphMetrics are the metrics of the glyph in a face's slot.
type GlyphMetrics struct {
	HoriAdvance fixed.Int26_6
}

// SizeMetrics are face metrics scaled to the current size.
type SizeMetrics struct {
	XPpem int
	YPpem int

	// XScale converts font units to 26.6 pixels, in 16.16 fixed point.
	XScale int32

	Ascender   fixed.Int26_6
	Descender  fixed.Int26_6
	Height     fixed.Int26_6
	MaxAdvance fixed.Int26_6
}

// OS2 holds the strikeout metrics of the OS/2 table, in font units.
type OS2 struct {
	StrikeoutSize     int16
	StrikeoutPosition int16
}

// RenderConfig carries per-call rendering state.
type RenderConfig struct {
	LcdFilter LcdFilter
}

// Bitmap is a rendered glyph.
type Bitmap struct {
	Mode PixelMode

	// Width and Rows are the raw dimensions of Buffer. For LCD bitmaps
	// Width counts subpixels; for LCDV bitmaps Rows does.
	Width int
	Rows  int

	// Pitch is the byte stride between rows. It may be negative for
	// bottom-up bitmaps.
	Pitch int

	Buffer []byte

	// Left and Top are the bitmap bearings in pixels.
	Left int
	Top  int
}
