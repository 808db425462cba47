package glyphcache

import (
	"fmt"
	"math"
)

const unknownStr = "Unknown"

// Slant is the requested slant of a descriptive style.
type Slant int

const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "Normal"
	case SlantItalic:
		return "Italic"
	case SlantOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// Weight is the requested weight of a descriptive style.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "Normal"
	case WeightBold:
		return "Bold"
	default:
		return unknownStr
	}
}

// Style is either a specific style name or a slant/weight description.
// Style values are comparable.
type Style struct {
	name     string
	slant    Slant
	weight   Weight
	specific bool
}

// SpecificStyle requests the style with the exact name, e.g. "Bold Italic".
func SpecificStyle(name string) Style {
	return Style{name: name, specific: true}
}

// DescriptiveStyle requests the closest style to slant and weight.
func DescriptiveStyle(slant Slant, weight Weight) Style {
	return Style{slant: slant, weight: weight}
}

// IsSpecific reports whether the style names a style exactly.
func (s Style) IsSpecific() bool { return s.specific }

// Name returns the style name of a specific style.
func (s Style) Name() string { return s.name }

// Slant returns the slant of a descriptive style.
func (s Style) Slant() Slant { return s.slant }

// Weight returns the weight of a descriptive style.
func (s Style) Weight() Weight { return s.weight }

func (s Style) String() string {
	if s.specific {
		return s.name
	}
	return fmt.Sprintf("slant=%s, weight=%s", s.slant, s.weight)
}

// FontDesc is an abstract font request.
type FontDesc struct {
	Family string
	Style  Style
}

func (d FontDesc) String() string {
	return fmt.Sprintf("family %q and style %s", d.Family, d.Style)
}

// sizeFactor is the number of Size units per point.
const sizeFactor = 2

// Size is a font size in half points. Sizes are exact so they can be used
// in map keys.
type Size int16

// NewSize converts a point size, truncating to half-point precision and
// saturating at the int16 range. NaN maps to 0.
func NewSize(pts float64) Size {
	v := math.Trunc(pts * sizeFactor)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return Size(v)
}

// Pts returns the size in points.
func (s Size) Pts() float64 { return float64(s) / sizeFactor }

// Add returns s+o, saturating instead of overflowing.
func (s Size) Add(o Size) Size {
	v := int32(s) + int32(o)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return Size(v)
}

func (s Size) String() string { return fmt.Sprintf("%gpt", s.Pts()) }

// FontKey identifies a loaded face. The zero FontKey is never issued.
type FontKey struct {
	token uint64
}

// IsZero reports whether k is the zero key.
func (k FontKey) IsZero() bool { return k.token == 0 }

func (k FontKey) String() string { return fmt.Sprintf("FontKey(%d)", k.token) }

// KeyType selects a glyph either by character or by glyph index.
type KeyType struct {
	value   uint32
	isIndex bool
}

// Char selects the glyph the font maps r to.
func Char(r rune) KeyType { return KeyType{value: uint32(r)} }

// GlyphIndex selects a glyph by its index in the font.
func GlyphIndex(i uint32) KeyType { return KeyType{value: i, isIndex: true} }

// Rune returns the character of a Char key.
func (k KeyType) Rune() (rune, bool) {
	if k.isIndex {
		return 0, false
	}
	return rune(k.value), true
}

// Index returns the glyph index of a GlyphIndex key.
func (k KeyType) Index() (uint32, bool) {
	if !k.isIndex {
		return 0, false
	}
	return k.value, true
}

func (k KeyType) String() string {
	if k.isIndex {
		return fmt.Sprintf("glyph#%d", k.value)
	}
	return fmt.Sprintf("%q", rune(k.value))
}

// GlyphKey identifies one rasterization request.
type GlyphKey struct {
	Glyph KeyType
	Font  FontKey
	Size  Size
}

// RasterizedGlyph is a glyph bitmap in canonical form.
type RasterizedGlyph struct {
	Glyph KeyType

	Width  int
	Height int

	// Top and Left are the bitmap bearings relative to the pen position.
	Top  int
	Left int

	// Colored is set for glyphs from color fonts.
	Colored bool

	// Buf holds Width*Height RGB pixels, row-major.
	Buf []byte
}

// Metrics are the line metrics of a face at one size, in pixels.
type Metrics struct {
	AverageAdvance float64
	LineHeight     float64

	Descent            float32
	UnderlinePosition  float32
	UnderlineThickness float32
	StrikeoutPosition  float32
	StrikeoutThickness float32
}
