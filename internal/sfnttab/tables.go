// Package sfnttab gives table-level access to the faces of TrueType/OpenType
// fonts and collections. The table directory and the fixed-layout tables
// (post, OS/2, hhea, head) are read with go-text/typesetting; the
// CBLC/CBDT bitmap strikes of color fonts are walked here.
package sfnttab

import (
	"bytes"
	"errors"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Table directory errors.
var (
	// ErrInvalidFont is returned when the data is not an SFNT font or collection.
	ErrInvalidFont = errors.New("sfnttab: invalid font data")

	// ErrFaceIndex is returned when a collection does not contain the requested face.
	ErrFaceIndex = errors.New("sfnttab: face index out of range")
)

// offsetTableSize is the smallest valid SFNT header.
const offsetTableSize = 12

// Tables is the table directory of a single face. Table contents are read
// on demand.
type Tables struct {
	ld *ot.Loader
}

// Open reads the table directory of every face in data.
func Open(data []byte) ([]*Tables, error) {
	if len(data) < offsetTableSize {
		return nil, ErrInvalidFont
	}
	lds, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	out := make([]*Tables, len(lds))
	for i, ld := range lds {
		out[i] = &Tables{ld: ld}
	}
	return out, nil
}

// NumFaces returns the number of faces in data: the collection size for
// TTC/OTC files, 1 for a plain font, 0 if data is not recognizable.
func NumFaces(data []byte) int {
	faces, err := Open(data)
	if err != nil {
		return 0
	}
	return len(faces)
}

// Parse reads the table directory of face index in data.
// For non-collection fonts only index 0 is valid.
func Parse(data []byte, index int) (*Tables, error) {
	faces, err := Open(data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(faces) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, index, len(faces))
	}
	return faces[index], nil
}

// Loader returns the underlying table loader.
func (t *Tables) Loader() *ot.Loader { return t.ld }

// Has reports whether the face has a table with the given tag.
func (t *Tables) Has(tag string) bool {
	return t.ld.HasTable(ot.MustNewTag(tag))
}

// Table returns the raw bytes of the table, or nil when it is missing or
// truncated.
func (t *Tables) Table(tag string) []byte {
	b, err := t.ld.RawTable(ot.MustNewTag(tag))
	if err != nil {
		return nil
	}
	return b
}

// Scalable reports whether the face carries outlines (glyf, CFF or CFF2).
func (t *Tables) Scalable() bool {
	return t.Has("glyf") || t.Has("CFF ") || t.Has("CFF2")
}

// Color reports whether the face carries any color glyph table.
func (t *Tables) Color() bool {
	return t.Has("CBDT") || t.Has("sbix") || t.Has("COLR")
}

// Post decodes the post table header.
func (t *Tables) Post() (tables.Post, bool) {
	p, _, err := tables.ParsePost(t.Table("post"))
	if err != nil {
		return tables.Post{}, false
	}
	return p, true
}

// Cmap decodes the best Unicode subtable of the cmap.
func (t *Tables) Cmap() (gotext.Cmap, error) {
	raw, err := t.ld.RawTable(ot.MustNewTag("cmap"))
	if err != nil {
		return nil, err
	}
	tb, _, err := tables.ParseCmap(raw)
	if err != nil {
		return nil, err
	}
	fp := tables.FPNone
	if os2, ok := t.OS2(); ok {
		fp = os2.FontPage()
	}
	cmap, _, err := gotext.ProcessCmap(tb, fp)
	return cmap, err
}

// Name table record IDs.
const (
	NameFamily               tables.NameID = 1
	NameSubfamily            tables.NameID = 2
	NameTypographicFamily    tables.NameID = 16
	NameTypographicSubfamily tables.NameID = 17
)

// Name returns the first non-empty name record among ids.
func (t *Tables) Name(ids ...tables.NameID) string {
	names, _, err := tables.ParseName(t.Table("name"))
	if err != nil {
		return ""
	}
	for _, id := range ids {
		if s := names.Name(id); s != "" {
			return s
		}
	}
	return ""
}

// OS/2 fsSelection bits.
const (
	SelectionItalic  = 1 << 0
	SelectionBold    = 1 << 5
	SelectionOblique = 1 << 9
)

// OS2 decodes the OS/2 table.
func (t *Tables) OS2() (tables.Os2, bool) {
	o, _, err := tables.ParseOs2(t.Table("OS/2"))
	if err != nil {
		return tables.Os2{}, false
	}
	return o, true
}

// UnitsPerEm returns head.unitsPerEm, or 0 when the table is missing.
func (t *Tables) UnitsPerEm() uint16 {
	h, _, err := tables.ParseHead(t.Table("head"))
	if err != nil {
		return 0
	}
	return h.UnitsPerEm
}

// Hhea decodes the horizontal header.
func (t *Tables) Hhea() (tables.Hhea, bool) {
	h, _, err := tables.ParseHhea(t.Table("hhea"))
	if err != nil {
		return tables.Hhea{}, false
	}
	return h, true
}
