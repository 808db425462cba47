package glyphcache

import "sync/atomic"

// fontKeyCounter is shared by every Rasterizer in the process so keys stay
// unique across instances.
var fontKeyCounter atomic.Uint64

// NextFontKey allocates a new FontKey. Safe for concurrent use.
func NextFontKey() FontKey {
	return FontKey{token: fontKeyCounter.Add(1)}
}
