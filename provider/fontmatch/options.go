package fontmatch

import "github.com/gogpu/glyphcache/provider"

// Attributes are the rendering attributes reported with every match.
type Attributes struct {
	Antialias      bool
	HintStyle      provider.HintStyle
	Geometry       provider.SubpixelGeometry
	EmbeddedBitmap bool
	LcdFilter      provider.LcdFilterSetting
}

// DefaultAttributes returns grayscale antialiasing with slight hinting,
// embedded bitmaps enabled and the default LCD filter.
func DefaultAttributes() Attributes {
	return Attributes{
		Antialias:      true,
		HintStyle:      provider.HintSlight,
		Geometry:       provider.GeometryUnknown,
		EmbeddedBitmap: true,
		LcdFilter:      provider.LcdFilterSettingDefault,
	}
}

// Option configures an Index.
type Option func(*config)

type config struct {
	defaults     Attributes
	families     map[string]Attributes // keyed by folded family
	strictFamily bool
}

func defaultConfig() config {
	return config{
		defaults: DefaultAttributes(),
		families: make(map[string]Attributes),
	}
}

// WithDefaults replaces the attributes used for families without an override.
func WithDefaults(a Attributes) Option {
	return func(c *config) {
		c.defaults = a
	}
}

// WithFamilyAttributes overrides the attributes of one family.
// Family names are compared case-insensitively, ignoring blanks.
func WithFamilyAttributes(family string, a Attributes) Option {
	return func(c *config) {
		c.families[foldName(family)] = a
	}
}

// WithStrictFamily makes family queries fail instead of returning the best
// font of another family.
func WithStrictFamily() Option {
	return func(c *config) {
		c.strictFamily = true
	}
}
