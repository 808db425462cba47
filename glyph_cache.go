package glyphcache

import "github.com/gogpu/glyphcache/internal/cache"

// DefaultGlyphCacheCapacity is the capacity used when NewGlyphCache is given
// a non-positive one.
const DefaultGlyphCacheCapacity = 4096

// GlyphCache memoizes rasterized glyphs in front of a Rasterizer with LRU
// eviction. Failed rasterizations are not cached.
//
// Cached bitmaps depend on the device pixel ratio; call Clear after
// UpdateDevicePixelRatio.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	r       *Rasterizer
	entries *cache.LRU[GlyphKey, RasterizedGlyph]
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// HitRate returns the fraction of lookups served from the cache.
func (s GlyphCacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewGlyphCache creates a glyph cache over r holding at most capacity glyphs.
func NewGlyphCache(r *Rasterizer, capacity int) *GlyphCache {
	if capacity <= 0 {
		capacity = DefaultGlyphCacheCapacity
	}
	return &GlyphCache{
		r:       r,
		entries: cache.New[GlyphKey, RasterizedGlyph](capacity),
	}
}

// Get returns the glyph for key, rasterizing it on a miss.
func (c *GlyphCache) Get(key GlyphKey) (RasterizedGlyph, error) {
	if g, ok := c.entries.Get(key); ok {
		return g, nil
	}
	g, err := c.r.GetGlyph(key)
	if err != nil {
		return RasterizedGlyph{}, err
	}
	c.entries.Put(key, g)
	return g, nil
}

// Preload rasterizes every rune of chars in font at size. It stops at the
// first error.
func (c *GlyphCache) Preload(font FontKey, size Size, chars []rune) error {
	for _, ch := range chars {
		if _, err := c.Get(GlyphKey{Glyph: Char(ch), Font: font, Size: size}); err != nil {
			return err
		}
	}
	return nil
}

// PrintableASCII returns the runes ' ' through '~'.
func PrintableASCII() []rune {
	out := make([]rune, 0, '~'-' '+1)
	for ch := ' '; ch <= '~'; ch++ {
		out = append(out, ch)
	}
	return out
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int { return c.entries.Len() }

// Stats returns cache statistics.
func (c *GlyphCache) Stats() GlyphCacheStats {
	s := c.entries.Stats()
	return GlyphCacheStats{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		Len:       c.entries.Len(),
		Capacity:  c.entries.Capacity(),
	}
}

// Clear drops every cached glyph.
func (c *GlyphCache) Clear() { c.entries.Clear() }
