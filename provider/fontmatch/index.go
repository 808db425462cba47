// Package fontmatch implements provider.Matcher over a set of font files.
//
// An Index is filled from explicit files, directories or the platform's
// font directories, and answers family, style and charset queries the way
// a system font configuration would:
//
//	idx := fontmatch.New()
//	if err := idx.UseSystemFonts(); err != nil {
//	    log.Print(err)
//	}
//	m, ok := idx.Match(provider.Query{Family: "DejaVu Sans Mono"})
//
// An Index is not safe for concurrent use.
package fontmatch

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/font"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/provider"
)

// Index is a searchable set of font faces.
type Index struct {
	cfg     config
	entries []*entry
	paths   map[string]bool
}

// New creates an empty Index.
func New(opts ...Option) *Index {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Index{
		cfg:   cfg,
		paths: make(map[string]bool),
	}
}

// Len returns the number of indexed faces.
func (x *Index) Len() int { return len(x.entries) }

// AddFile indexes every face of the font file at path. Adding a file twice
// has no effect.
func (x *Index) AddFile(path string) error {
	if x.paths[path] {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	entries, err := scanFont(path, data)
	if err != nil {
		return err
	}
	x.paths[path] = true
	x.entries = append(x.entries, entries...)
	return nil
}

var fontExts = []string{".ttf", ".otf", ".ttc", ".otc"}

// AddDir indexes every font file below dir. Unreadable fonts are logged
// and skipped; only a failure to read dir itself is returned.
func (x *Index) AddDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			glyphcache.Logger().Warn("fontmatch: skipping unreadable path", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !slices.Contains(fontExts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		if err := x.AddFile(path); err != nil {
			glyphcache.Logger().Warn("fontmatch: skipping unreadable font", "path", path, "err", err)
		}
		return nil
	})
}

// UseSystemFonts indexes the platform font directories, including those
// listed in the fontconfig configuration.
func (x *Index) UseSystemFonts() error {
	dirs, err := systemFontDirs()
	if err != nil {
		return fmt.Errorf("fontmatch: %w", err)
	}
	var errs []error
	for _, dir := range dirs {
		if err := x.AddDir(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	glyphcache.Logger().Debug("fontmatch: indexed system fonts", "dirs", len(dirs), "faces", len(x.entries))
	return errors.Join(errs...)
}

// Scores of the matching criteria. Family dominates everything else.
const (
	scoreFamily    = 1000
	scoreStyleName = 200
	scoreSlant     = 60
	scoreWeight    = 40
	scoreWeightGap = 8
	scoreSize      = 5
)

type candidate struct {
	e     *entry
	score int
}

// Match returns the best face for q. Ties keep insertion order.
func (x *Index) Match(q provider.Query) (provider.Match, bool) {
	family := foldName(q.Family)
	style := foldName(q.StyleName)

	cands := make([]candidate, 0, len(x.entries))
	for _, e := range x.entries {
		if x.cfg.strictFamily && family != "" && e.familyKey != family {
			continue
		}
		cands = append(cands, candidate{e: e, score: score(e, q, family, style)})
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	for _, c := range cands {
		if len(q.Charset) > 0 && !x.covers(c.e, q.Charset) {
			continue
		}
		return x.match(c.e, q), true
	}
	return provider.Match{}, false
}

func score(e *entry, q provider.Query, family, style string) int {
	s := 0
	if family != "" && e.familyKey == family {
		s += scoreFamily
	}
	if style != "" && e.styleKey == style {
		s += scoreStyleName
	}

	// A zero query without a style name asks for a regular face.
	if q.HasAspect || style == "" {
		switch {
		case e.slant == q.Slant:
			s += scoreSlant
		case e.slant != font.StyleNormal && q.Slant != font.StyleNormal:
			s += scoreSlant / 2
		}
		gap := int(e.weight) - int(q.Weight)
		if gap < 0 {
			gap = -gap
		}
		s += max(0, scoreWeight-scoreWeightGap*gap)
	}

	if e.scalable || slices.Contains(e.strikes, math.Round(q.PixelSize)) {
		s += scoreSize
	}
	return s
}

// covers reports whether e maps every rune of charset.
func (x *Index) covers(e *entry, charset []rune) bool {
	if !e.checked {
		e.checked = true
		rs, err := loadCoverage(e.path, e.index)
		if err != nil {
			glyphcache.Logger().Debug("fontmatch: no charset coverage", "path", e.path, "err", err)
		}
		e.coverage = rs
	}
	for _, r := range charset {
		if !e.coverage.Contains(r) {
			return false
		}
	}
	return true
}

func (x *Index) match(e *entry, q provider.Query) provider.Match {
	attrs, ok := x.cfg.families[e.familyKey]
	if !ok {
		attrs = x.cfg.defaults
	}

	m := provider.Match{
		Path:           e.path,
		Index:          e.index,
		Scalable:       e.scalable,
		PixelSizes:     slices.Clone(e.strikes),
		Antialias:      attrs.Antialias,
		HintStyle:      attrs.HintStyle,
		Geometry:       attrs.Geometry,
		EmbeddedBitmap: attrs.EmbeddedBitmap,
		Color:          e.color,
		LcdFilter:      attrs.LcdFilter,
	}
	if !e.scalable && len(e.strikes) > 0 && q.PixelSize > 0 {
		m.FixupFactor = q.PixelSize / e.strikes[0]
	}
	return m
}
