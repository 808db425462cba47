package glyphcache

import "github.com/gogpu/glyphcache/provider"

// loadFlags derives glyph load flags from a match's rendering attributes.
func loadFlags(m provider.Match) provider.LoadFlags {
	var flags provider.LoadFlags
	switch {
	case !m.Antialias && m.HintStyle == provider.HintNone:
		flags = provider.LoadNoHinting | provider.LoadMonochrome
	case !m.Antialias:
		flags = provider.LoadTargetMono | provider.LoadMonochrome
	case m.HintStyle == provider.HintNone:
		flags = provider.LoadNoHinting | provider.LoadTargetNormal
	case m.HintStyle == provider.HintSlight:
		// Light hinting wins even on subpixel displays; rendering may still
		// use an LCD mode.
		flags = provider.LoadTargetLight
	case m.Geometry.Horizontal():
		flags = provider.LoadTargetLCD
	case m.Geometry.Vertical():
		flags = provider.LoadTargetLCDV
	default:
		flags = provider.LoadTargetNormal
	}

	if !m.EmbeddedBitmap {
		flags |= provider.LoadNoBitmap
	}
	if m.Color {
		flags |= provider.LoadColor
	}
	return flags
}

// renderMode selects the bitmap kind for a match.
func renderMode(m provider.Match) provider.RenderMode {
	switch {
	case !m.Antialias:
		return provider.RenderMono
	case m.Geometry.Horizontal():
		return provider.RenderLCD
	case m.Geometry.Vertical():
		return provider.RenderLCDV
	default:
		return provider.RenderNormal
	}
}

func lcdFilter(s provider.LcdFilterSetting) provider.LcdFilter {
	switch s {
	case provider.LcdFilterSettingNone:
		return provider.LcdFilterNone
	case provider.LcdFilterSettingLight:
		return provider.LcdFilterLight
	case provider.LcdFilterSettingLegacy:
		return provider.LcdFilterLegacy
	default:
		return provider.LcdFilterDefault
	}
}
