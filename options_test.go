package glyphcache

import "testing"

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantDPR float64
		wantDPI float64
	}{
		{"defaults", nil, 1, 96},
		{"custom", []Option{WithDevicePixelRatio(1.5), WithDPI(72)}, 1.5, 72},
		{"non-positive ignored", []Option{WithDevicePixelRatio(0), WithDPI(-1)}, 1, 96},
		{"last wins", []Option{WithDPI(120), WithDPI(144)}, 1, 144},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeMatcher{}, &fakeLibrary{}, tt.opts...)
			if r.devicePixelRatio != tt.wantDPR || r.dpi != tt.wantDPI {
				t.Errorf("dpr, dpi = %v, %v, want %v, %v", r.devicePixelRatio, r.dpi, tt.wantDPR, tt.wantDPI)
			}
		})
	}
}

func TestToPixels(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		size Size
		want float64
	}{
		{"12pt at 96dpi", nil, NewSize(12), 16},
		{"12pt at 72dpi", []Option{WithDPI(72)}, NewSize(12), 12},
		{"half point", nil, NewSize(10.5), 14},
		{"retina", []Option{WithDevicePixelRatio(2)}, NewSize(9), 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeMatcher{}, &fakeLibrary{}, tt.opts...)
			if got := r.toPixels(tt.size); got != tt.want {
				t.Errorf("toPixels(%v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}
