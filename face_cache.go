package glyphcache

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphcache/provider"
)

// location identifies one face of a font file.
type location struct {
	path  string
	index int
}

func (l location) String() string {
	if l.index == 0 {
		return l.path
	}
	return fmt.Sprintf("%s#%d", l.path, l.index)
}

// face is a loaded face plus the rendering attributes derived from its match.
type face struct {
	handle provider.Face
	key    FontKey
	loc    location

	loadFlags  provider.LoadFlags
	renderMode provider.RenderMode
	lcdFilter  provider.LcdFilter

	// fixedSize is the strike size of a non-scalable face, 0 when scalable.
	fixedSize float64
	hasColor  bool

	// fixupFactor rescales color strikes; 0 means compute it at render time.
	fixupFactor float64
}

// faceCache owns every loaded face. The two indexes always agree: each
// location maps to exactly one key, and that key maps back to a face at
// the same location.
type faceCache struct {
	faces map[FontKey]*face
	keys  map[location]FontKey
}

func newFaceCache() *faceCache {
	return &faceCache{
		faces: make(map[FontKey]*face),
		keys:  make(map[location]FontKey),
	}
}

func (c *faceCache) get(key FontKey) (*face, bool) {
	f, ok := c.faces[key]
	return f, ok
}

func (c *faceCache) lookup(loc location) (FontKey, bool) {
	key, ok := c.keys[loc]
	return key, ok
}

// insert adds f. It panics if f's location is already cached.
func (c *faceCache) insert(f *face) {
	if _, dup := c.keys[f.loc]; dup {
		panic(fmt.Sprintf("glyphcache: duplicate face for %s", f.loc))
	}
	c.faces[f.key] = f
	c.keys[f.loc] = f.key
}

func (c *faceCache) len() int { return len(c.faces) }

// closeAll releases every handle and empties the cache.
func (c *faceCache) closeAll() error {
	var errs []error
	for _, f := range c.faces {
		if err := f.handle.Close(); err != nil {
			errs = append(errs, &BackendError{Op: "close", Path: f.loc.path, Err: err})
		}
	}
	c.faces = make(map[FontKey]*face)
	c.keys = make(map[location]FontKey)
	return errors.Join(errs...)
}
