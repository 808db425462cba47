package provider

const unknownStr = "Unknown"

// HintStyle is the configured hinting strength.
type HintStyle int

const (
	HintNone HintStyle = iota
	HintSlight
	HintMedium
	HintFull
)

// String returns the string representation of the hint style.
func (h HintStyle) String() string {
	switch h {
	case HintNone:
		return "None"
	case HintSlight:
		return "Slight"
	case HintMedium:
		return "Medium"
	case HintFull:
		return "Full"
	default:
		return unknownStr
	}
}

// SubpixelGeometry is the physical subpixel order of the display.
type SubpixelGeometry int

const (
	GeometryUnknown SubpixelGeometry = iota
	GeometryRGB
	GeometryBGR
	GeometryVRGB
	GeometryVBGR
	GeometryNone
)

// String returns the string representation of the geometry.
func (g SubpixelGeometry) String() string {
	switch g {
	case GeometryUnknown:
		return unknownStr
	case GeometryRGB:
		return "RGB"
	case GeometryBGR:
		return "BGR"
	case GeometryVRGB:
		return "VRGB"
	case GeometryVBGR:
		return "VBGR"
	case GeometryNone:
		return "None"
	default:
		return unknownStr
	}
}

// Horizontal reports whether subpixels are laid out left to right.
func (g SubpixelGeometry) Horizontal() bool { return g == GeometryRGB || g == GeometryBGR }

// Vertical reports whether subpixels are stacked top to bottom.
func (g SubpixelGeometry) Vertical() bool { return g == GeometryVRGB || g == GeometryVBGR }

// LcdFilterSetting is the LCD filter requested by the matching backend.
type LcdFilterSetting int

const (
	LcdFilterSettingNone LcdFilterSetting = iota
	LcdFilterSettingDefault
	LcdFilterSettingLight
	LcdFilterSettingLegacy
)

// LcdFilter is the filter applied by the renderer to subpixel bitmaps.
type LcdFilter int

const (
	LcdFilterNone LcdFilter = iota
	LcdFilterDefault
	LcdFilterLight
	LcdFilterLegacy
)

// String returns the string representation of the filter.
func (f LcdFilter) String() string {
	switch f {
	case LcdFilterNone:
		return "None"
	case LcdFilterDefault:
		return "Default"
	case LcdFilterLight:
		return "Light"
	case LcdFilterLegacy:
		return "Legacy"
	default:
		return unknownStr
	}
}

// LoadFlags controls how a glyph is loaded. The low bits are independent
// flags; bits 16 and up hold the hinting target.
type LoadFlags uint32

const (
	LoadNoHinting  LoadFlags = 1 << 1
	LoadNoBitmap   LoadFlags = 1 << 3
	LoadMonochrome LoadFlags = 1 << 12
	LoadColor      LoadFlags = 1 << 20

	targetShift = 16
	targetMask  = LoadFlags(0xf) << targetShift
)

// Hinting targets, stored in the target bits of LoadFlags.
const (
	LoadTargetNormal LoadFlags = LoadFlags(RenderNormal) << targetShift
	LoadTargetLight  LoadFlags = LoadFlags(RenderLight) << targetShift
	LoadTargetMono   LoadFlags = LoadFlags(RenderMono) << targetShift
	LoadTargetLCD    LoadFlags = LoadFlags(RenderLCD) << targetShift
	LoadTargetLCDV   LoadFlags = LoadFlags(RenderLCDV) << targetShift
)

// Target returns the render mode encoded in the target bits.
func (f LoadFlags) Target() RenderMode {
	return RenderMode((f & targetMask) >> targetShift)
}

// Has reports whether all bits of o are set in f.
func (f LoadFlags) Has(o LoadFlags) bool { return f&o == o }

// RenderMode selects the kind of bitmap a glyph is rendered to.
type RenderMode int

const (
	RenderNormal RenderMode = iota
	RenderLight
	RenderMono
	RenderLCD
	RenderLCDV
)

// String returns the string representation of the render mode.
func (m RenderMode) String() string {
	switch m {
	case RenderNormal:
		return "Normal"
	case RenderLight:
		return "Light"
	case RenderMono:
		return "Mono"
	case RenderLCD:
		return "LCD"
	case RenderLCDV:
		return "LCDV"
	default:
		return unknownStr
	}
}

// PixelMode is the encoding of a rendered bitmap.
type PixelMode int

const (
	PixelModeNone PixelMode = iota
	PixelModeMono
	PixelModeGray
	PixelModeGray2
	PixelModeGray4
	PixelModeLCD
	PixelModeLCDV
	PixelModeBGRA
)

// String returns the string representation of the pixel mode.
func (m PixelMode) String() string {
	switch m {
	case PixelModeNone:
		return "None"
	case PixelModeMono:
		return "Mono"
	case PixelModeGray:
		return "Gray"
	case PixelModeGray2:
		return "Gray2"
	case PixelModeGray4:
		return "Gray4"
	case PixelModeLCD:
		return "LCD"
	case PixelModeLCDV:
		return "LCDV"
	case PixelModeBGRA:
		return "BGRA"
	default:
		return unknownStr
	}
}
