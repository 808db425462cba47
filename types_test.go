package glyphcache

import (
	"math"
	"testing"
)

func TestNewSize(t *testing.T) {
	tests := []struct {
		pts  float64
		want Size
		back float64
	}{
		{12, 24, 12},
		{11.5, 23, 11.5},
		{11.75, 23, 11.5},
		{0, 0, 0},
		{-3.5, -7, -3.5},
		{1e9, math.MaxInt16, float64(math.MaxInt16) / 2},
		{-1e9, math.MinInt16, float64(math.MinInt16) / 2},
		{math.NaN(), 0, 0},
		{math.Inf(1), math.MaxInt16, float64(math.MaxInt16) / 2},
	}
	for _, tt := range tests {
		got := NewSize(tt.pts)
		if got != tt.want {
			t.Errorf("NewSize(%v) = %d, want %d", tt.pts, got, tt.want)
		}
		if got.Pts() != tt.back {
			t.Errorf("NewSize(%v).Pts() = %v, want %v", tt.pts, got.Pts(), tt.back)
		}
	}
}

func TestSizeAdd(t *testing.T) {
	tests := []struct {
		a, b, want Size
	}{
		{NewSize(12), NewSize(1.5), NewSize(13.5)},
		{NewSize(12), NewSize(-2), NewSize(10)},
		{math.MaxInt16 - 1, 5, math.MaxInt16},
		{math.MinInt16 + 1, -5, math.MinInt16},
	}
	for _, tt := range tests {
		if got := tt.a.Add(tt.b); got != tt.want {
			t.Errorf("%d.Add(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSizeString(t *testing.T) {
	if got := NewSize(10.5).String(); got != "10.5pt" {
		t.Errorf("String() = %q, want 10.5pt", got)
	}
}

func TestSizeAsMapKey(t *testing.T) {
	m := map[GlyphKey]int{}
	k := FontKey{token: 7}
	m[GlyphKey{Glyph: Char('a'), Font: k, Size: NewSize(12)}] = 1
	if _, ok := m[GlyphKey{Glyph: Char('a'), Font: k, Size: NewSize(12.2)}]; !ok {
		t.Error("12pt and 12.2pt produced different keys")
	}
	if _, ok := m[GlyphKey{Glyph: Char('a'), Font: k, Size: NewSize(12.5)}]; ok {
		t.Error("12pt and 12.5pt produced the same key")
	}
}

func TestKeyType(t *testing.T) {
	c := Char('λ')
	if r, ok := c.Rune(); !ok || r != 'λ' {
		t.Errorf("Char('λ').Rune() = %q, %v", r, ok)
	}
	if _, ok := c.Index(); ok {
		t.Error("Char key reported an index")
	}

	g := GlyphIndex(955)
	if i, ok := g.Index(); !ok || i != 955 {
		t.Errorf("GlyphIndex(955).Index() = %d, %v", i, ok)
	}
	if _, ok := g.Rune(); ok {
		t.Error("GlyphIndex key reported a rune")
	}

	// 'λ' is U+03BB = 955: the two kinds never collide.
	if c == g {
		t.Error("Char('λ') == GlyphIndex(955)")
	}
	if got := c.String(); got != `'λ'` {
		t.Errorf("Char String() = %s", got)
	}
	if got := g.String(); got != "glyph#955" {
		t.Errorf("GlyphIndex String() = %s", got)
	}
}

func TestStyle(t *testing.T) {
	s := SpecificStyle("Bold Italic")
	if !s.IsSpecific() || s.Name() != "Bold Italic" || s.String() != "Bold Italic" {
		t.Errorf("SpecificStyle = %+v", s)
	}

	d := DescriptiveStyle(SlantOblique, WeightBold)
	if d.IsSpecific() {
		t.Error("DescriptiveStyle reported specific")
	}
	if d.Slant() != SlantOblique || d.Weight() != WeightBold {
		t.Errorf("DescriptiveStyle = %v, %v", d.Slant(), d.Weight())
	}
	if got := d.String(); got != "slant=Oblique, weight=Bold" {
		t.Errorf("String() = %q", got)
	}

	if DescriptiveStyle(SlantNormal, WeightNormal) != (Style{}) {
		t.Error("zero Style is not normal descriptive")
	}
}

func TestFontDescString(t *testing.T) {
	d := FontDesc{Family: "DejaVu Sans Mono", Style: SpecificStyle("Book")}
	want := `family "DejaVu Sans Mono" and style Book`
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	err := &MissingFontError{Desc: d}
	if got := err.Error(); got != "glyphcache: no font matches "+want {
		t.Errorf("Error() = %q", got)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SlantItalic.String(), "Italic"},
		{Slant(9).String(), "Unknown"},
		{WeightBold.String(), "Bold"},
		{Weight(9).String(), "Unknown"},
		{ResolveDirect.String(), "Direct"},
		{ResolveFallback.String(), "Fallback"},
		{ResolveMode(5).String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestBackendError(t *testing.T) {
	err := &BackendError{Op: "load", Path: "/a.ttf", Err: ErrInvalidBitmap}
	if got := err.Error(); got != "glyphcache: load /a.ttf: glyphcache: invalid bitmap" {
		t.Errorf("Error() = %q", got)
	}
	err.Path = ""
	if got := err.Error(); got != "glyphcache: load: glyphcache: invalid bitmap" {
		t.Errorf("Error() = %q", got)
	}
}
