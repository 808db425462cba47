package outline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcache/internal/sfnttab"
	"github.com/gogpu/glyphcache/internal/sfnttab/sfnttest"
	"github.com/gogpu/glyphcache/provider"
)

// emojiPNG encodes a 2×2 image: red, transparent / blue, white.
func emojiPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var wantEmojiBGRA = []byte{
	0, 0, 255, 255, 0, 0, 0, 0,
	255, 0, 0, 255, 255, 255, 255, 255,
}

// strikeFace builds a bitmap-only face with strikes of 16 and 32 ppem
// holding glyph 4.
func strikeFace(t *testing.T) *Face {
	t.Helper()
	img := emojiPNG(t)
	cblc, cbdt := sfnttest.Strikes([]sfnttest.Strike{
		{PPEM: 16, Ascent: 14, First: 4, Images: [][]byte{img}},
		{PPEM: 32, Ascent: 28, First: 4, Images: [][]byte{img}},
	})
	// Without cmap or head the outline parser rejects the font, so the
	// face is assembled from the tables alone.
	tabs, err := sfnttab.Parse(sfnttest.Font(map[string][]byte{"CBLC": cblc, "CBDT": cbdt}), 0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := tabs.Strikes()
	if err != nil {
		t.Fatal(err)
	}
	return &Face{tabs: tabs, upem: 2048, strikes: s, strike: -1}
}

func TestStrikeBGRA(t *testing.T) {
	bm, err := StrikeBGRA(sfnttab.StrikeGlyph{Data: emojiPNG(t), BearingX: 1, BearingY: 9, Advance: 13})
	if err != nil {
		t.Fatalf("StrikeBGRA() error = %v", err)
	}
	if bm.Mode != provider.PixelModeBGRA || bm.Width != 2 || bm.Rows != 2 || bm.Pitch != 8 {
		t.Errorf("bitmap = %v %dx%d pitch %d, want BGRA 2x2 pitch 8", bm.Mode, bm.Width, bm.Rows, bm.Pitch)
	}
	if bm.Left != 1 || bm.Top != 9 {
		t.Errorf("bearings = (%d, %d), want (1, 9)", bm.Left, bm.Top)
	}
	if !bytes.Equal(bm.Buffer, wantEmojiBGRA) {
		t.Errorf("Buffer = %v, want %v", bm.Buffer, wantEmojiBGRA)
	}

	if _, err := StrikeBGRA(sfnttab.StrikeGlyph{Data: []byte("not a png")}); err == nil {
		t.Error("StrikeBGRA(garbage) error = nil")
	}
}

func TestFace_Strikes(t *testing.T) {
	f := strikeFace(t)

	if !f.HasColor() {
		t.Error("HasColor() = false with strikes present")
	}
	if _, ok := f.SizeMetrics(); ok {
		t.Error("SizeMetrics() ok before a strike was selected")
	}

	// 20px selects the smallest strike not below it.
	if err := f.SetCharSize(20); err != nil {
		t.Fatalf("SetCharSize(20) error = %v", err)
	}
	sm, ok := f.SizeMetrics()
	if !ok {
		t.Fatal("SizeMetrics() not ok with a strike selected")
	}
	want := provider.SizeMetrics{
		XPpem:      32,
		YPpem:      32,
		XScale:     65536,
		Ascender:   fixed.I(28),
		Descender:  fixed.I(-7),
		Height:     fixed.I(35),
		MaxAdvance: fixed.I(32),
	}
	if sm != want {
		t.Errorf("SizeMetrics() = %+v, want %+v", sm, want)
	}

	if err := f.SelectFixedSize(0); err != nil {
		t.Fatalf("SelectFixedSize(0) error = %v", err)
	}
	if sm, _ := f.SizeMetrics(); sm.YPpem != 16 {
		t.Errorf("YPpem = %d after SelectFixedSize(0), want 16", sm.YPpem)
	}
	if err := f.SelectFixedSize(2); !errors.Is(err, ErrNoStrike) {
		t.Errorf("SelectFixedSize(2) error = %v, want ErrNoStrike", err)
	}

	if err := f.LoadGlyph(4, provider.LoadColor); err != nil {
		t.Fatalf("LoadGlyph(4) error = %v", err)
	}
	if got := f.GlyphMetrics().HoriAdvance; got != fixed.I(13) {
		t.Errorf("HoriAdvance = %v, want 13px", got)
	}
	bm, err := f.Render(provider.RenderNormal, provider.RenderConfig{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(bm.Buffer, wantEmojiBGRA) || bm.Top != 9 || bm.Left != 1 {
		t.Errorf("Render() = %+v", bm)
	}

	if err := f.LoadGlyph(5, provider.LoadColor); !errors.Is(err, sfnttab.ErrGlyphNotInStrike) {
		t.Errorf("LoadGlyph(5) error = %v, want ErrGlyphNotInStrike", err)
	}
	if err := f.LoadGlyph(4, provider.LoadColor|provider.LoadNoBitmap); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("LoadGlyph(NoBitmap) error = %v, want ErrGlyphNotFound", err)
	}
}
