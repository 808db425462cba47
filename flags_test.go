package glyphcache

import (
	"testing"

	"github.com/gogpu/glyphcache/provider"
)

func TestLoadFlags(t *testing.T) {
	tests := []struct {
		name     string
		aa       bool
		hint     provider.HintStyle
		geometry provider.SubpixelGeometry
		want     provider.LoadFlags
	}{
		{"mono unhinted", false, provider.HintNone, provider.GeometryRGB, provider.LoadNoHinting | provider.LoadMonochrome},
		{"mono hinted", false, provider.HintFull, provider.GeometryUnknown, provider.LoadTargetMono | provider.LoadMonochrome},
		{"mono slight", false, provider.HintSlight, provider.GeometryVRGB, provider.LoadTargetMono | provider.LoadMonochrome},
		{"aa unhinted", true, provider.HintNone, provider.GeometryRGB, provider.LoadNoHinting | provider.LoadTargetNormal},
		{"aa slight rgb", true, provider.HintSlight, provider.GeometryRGB, provider.LoadTargetLight},
		{"aa slight gray", true, provider.HintSlight, provider.GeometryNone, provider.LoadTargetLight},
		{"aa medium rgb", true, provider.HintMedium, provider.GeometryRGB, provider.LoadTargetLCD},
		{"aa full bgr", true, provider.HintFull, provider.GeometryBGR, provider.LoadTargetLCD},
		{"aa full vrgb", true, provider.HintFull, provider.GeometryVRGB, provider.LoadTargetLCDV},
		{"aa medium vbgr", true, provider.HintMedium, provider.GeometryVBGR, provider.LoadTargetLCDV},
		{"aa full unknown", true, provider.HintFull, provider.GeometryUnknown, provider.LoadTargetNormal},
		{"aa full none", true, provider.HintFull, provider.GeometryNone, provider.LoadTargetNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := provider.Match{
				Antialias:      tt.aa,
				HintStyle:      tt.hint,
				Geometry:       tt.geometry,
				EmbeddedBitmap: true,
			}
			if got := loadFlags(m); got != tt.want {
				t.Errorf("loadFlags() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestLoadFlags_Extras(t *testing.T) {
	m := provider.Match{Antialias: true, HintStyle: provider.HintSlight}
	if got := loadFlags(m); !got.Has(provider.LoadNoBitmap) {
		t.Errorf("loadFlags() = %#x, want NoBitmap without embedded bitmaps", got)
	}

	m.EmbeddedBitmap = true
	m.Color = true
	got := loadFlags(m)
	if !got.Has(provider.LoadColor) || got.Has(provider.LoadNoBitmap) {
		t.Errorf("loadFlags() = %#x, want Color and no NoBitmap", got)
	}
	if got.Target() != provider.RenderLight {
		t.Errorf("Target() = %v, want Light", got.Target())
	}
}

func TestRenderMode(t *testing.T) {
	tests := []struct {
		aa       bool
		geometry provider.SubpixelGeometry
		want     provider.RenderMode
	}{
		{false, provider.GeometryRGB, provider.RenderMono},
		{true, provider.GeometryRGB, provider.RenderLCD},
		{true, provider.GeometryBGR, provider.RenderLCD},
		{true, provider.GeometryVRGB, provider.RenderLCDV},
		{true, provider.GeometryVBGR, provider.RenderLCDV},
		{true, provider.GeometryNone, provider.RenderNormal},
		{true, provider.GeometryUnknown, provider.RenderNormal},
	}
	for _, tt := range tests {
		m := provider.Match{Antialias: tt.aa, Geometry: tt.geometry}
		if got := renderMode(m); got != tt.want {
			t.Errorf("renderMode(aa=%v, %s) = %s, want %s", tt.aa, tt.geometry, got, tt.want)
		}
	}
}

func TestLcdFilter(t *testing.T) {
	tests := []struct {
		in   provider.LcdFilterSetting
		want provider.LcdFilter
	}{
		{provider.LcdFilterSettingNone, provider.LcdFilterNone},
		{provider.LcdFilterSettingDefault, provider.LcdFilterDefault},
		{provider.LcdFilterSettingLight, provider.LcdFilterLight},
		{provider.LcdFilterSettingLegacy, provider.LcdFilterLegacy},
		{provider.LcdFilterSetting(99), provider.LcdFilterDefault},
	}
	for _, tt := range tests {
		if got := lcdFilter(tt.in); got != tt.want {
			t.Errorf("lcdFilter(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
