package fontmatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font"
	"golang.org/x/text/cases"

	"github.com/gogpu/glyphcache/internal/sfnttab"
)

// entry is one indexed face.
type entry struct {
	path  string
	index int

	family string
	style  string

	// folded names used for comparisons
	familyKey string
	styleKey  string

	weight font.Weight
	slant  font.Style

	scalable bool
	color    bool
	strikes  []float64

	// coverage is read from the cmap on the first charset query.
	coverage fontscan.RuneSet
	checked  bool
}

// foldName case-folds s and drops blanks, so "DejaVu Sans" and
// "dejavusans" compare equal.
func foldName(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), "")
}

// scanFont returns one entry per face in data.
func scanFont(path string, data []byte) ([]*entry, error) {
	faces, err := sfnttab.Open(data)
	if err != nil {
		return nil, fmt.Errorf("fontmatch: %s: %w", path, err)
	}

	var buf []byte
	entries := make([]*entry, 0, len(faces))
	for i, tabs := range faces {
		var desc gotext.Description
		desc, buf = gotext.Describe(tabs.Loader(), buf)

		e := &entry{
			path:     path,
			index:    i,
			family:   desc.Family,
			style:    tabs.Name(sfnttab.NameTypographicSubfamily, sfnttab.NameSubfamily),
			scalable: tabs.Scalable(),
			color:    tabs.Color(),
		}
		if e.family == "" {
			e.family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		e.familyKey = foldName(e.family)
		e.styleKey = foldName(e.style)
		e.weight, e.slant = faceAspect(tabs, desc.Aspect, e.style)

		if s, err := tabs.Strikes(); err == nil {
			for _, ppem := range s.PPEMs() {
				e.strikes = append(e.strikes, float64(ppem))
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// faceAspect converts a described aspect to matcher weight and slant.
// Oblique faces are described as italic; OS/2 bit 9 or the style name
// tells them apart.
func faceAspect(tabs *sfnttab.Tables, a gotext.Aspect, style string) (font.Weight, font.Style) {
	slant := font.StyleNormal
	if a.Style == gotext.StyleItalic {
		slant = font.StyleItalic
		os2, ok := tabs.OS2()
		if ok && os2.FsSelection&sfnttab.SelectionOblique != 0 && os2.FsSelection&sfnttab.SelectionItalic == 0 ||
			strings.Contains(strings.ToLower(style), "oblique") {
			slant = font.StyleOblique
		}
	}
	return weightFromClass(int(a.Weight)), slant
}

// weightFromClass maps a usWeightClass value (100..900) onto font.Weight.
func weightFromClass(class int) font.Weight {
	if class <= 0 {
		return font.WeightNormal
	}
	w := (class+50)/100 - 4
	return font.Weight(max(int(font.WeightThin), min(int(font.WeightBlack), w)))
}

// loadCoverage reads the runes mapped by face index of the font at path.
func loadCoverage(path string, index int) (fontscan.RuneSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tabs, err := sfnttab.Parse(data, index)
	if err != nil {
		return nil, err
	}
	cmap, err := tabs.Cmap()
	if err != nil {
		return nil, err
	}

	var rs fontscan.RuneSet
	for it := cmap.Iter(); it.Next(); {
		r, _ := it.Char()
		rs.Add(r)
	}
	return rs, nil
}
