package glyphcache

// Option configures a Rasterizer during creation.
//
// Example:
//
//	r := glyphcache.New(matcher, library,
//	    glyphcache.WithDevicePixelRatio(2),
//	    glyphcache.WithDPI(96))
type Option func(*config)

type config struct {
	devicePixelRatio float64
	dpi              float64
}

// defaultDPI is the logical resolution points are converted at.
const defaultDPI = 96

func defaultConfig() config {
	return config{
		devicePixelRatio: 1,
		dpi:              defaultDPI,
	}
}

// WithDevicePixelRatio sets the initial device pixel ratio.
// Non-positive values are ignored.
func WithDevicePixelRatio(ratio float64) Option {
	return func(c *config) {
		if ratio > 0 {
			c.devicePixelRatio = ratio
		}
	}
}

// WithDPI sets the logical resolution used to convert points to pixels.
// Non-positive values are ignored. Default: 96.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}
