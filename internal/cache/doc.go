// Package cache provides a generic least-recently-used cache.
//
//	c := cache.New[string, int](100)
//	c.Put("key", 42)
//	value, ok := c.Get("key")
//
// The cache is meant for single-owner structures such as the glyph memo and
// does no locking of its own.
package cache
