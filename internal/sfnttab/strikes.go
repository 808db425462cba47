package sfnttab

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Bitmap strike errors.
var (
	// ErrNoStrikes indicates the face has no CBLC/CBDT pair.
	ErrNoStrikes = errors.New("sfnttab: face has no bitmap strikes")

	// ErrInvalidStrikes indicates malformed CBLC/CBDT data.
	ErrInvalidStrikes = errors.New("sfnttab: invalid CBLC/CBDT data")

	// ErrGlyphNotInStrike indicates the strike has no image for the glyph.
	ErrGlyphNotInStrike = errors.New("sfnttab: glyph not present in strike")
)

const (
	cblcMajorVersion = 3
	sizeRecordLen    = 48
	subtableEntryLen = 8
	subHeaderLen     = 8
)

// LineMetrics are the horizontal sbit line metrics of one strike, in pixels.
type LineMetrics struct {
	Ascender  int8
	Descender int8
	WidthMax  uint8
}

// StrikeGlyph is one embedded color image. Data holds the PNG stream.
type StrikeGlyph struct {
	Data     []byte
	Width    int
	Height   int
	BearingX int
	BearingY int
	Advance  int
}

type strike struct {
	listOffset uint32
	numLists   uint32
	firstGlyph uint16
	lastGlyph  uint16
	ppem       uint8
	hori       LineMetrics

	subtables []subtable // parsed on first lookup
}

type subtable struct {
	first, last uint16
	indexFormat uint16
	imageFormat uint16
	dataOffset  uint32

	offsets   []uint32 // formats 1 and 3, len = glyphs+1
	imageSize uint32   // formats 2 and 5
	shared    glyphMetrics
	sparse    []uint16 // formats 4 and 5 glyph ids
}

type glyphMetrics struct {
	height, width      uint8
	bearingX, bearingY int8
	advance            uint8
}

// Strikes indexes the bitmap strikes of a CBLC/CBDT color font.
type Strikes struct {
	cblc    []byte
	cbdt    []byte
	strikes []strike
}

// Strikes parses the CBLC strike list of the face.
func (t *Tables) Strikes() (*Strikes, error) {
	return ParseStrikes(t.Table("CBLC"), t.Table("CBDT"))
}

// ParseStrikes parses raw CBLC and CBDT tables.
func ParseStrikes(cblc, cbdt []byte) (*Strikes, error) {
	if len(cblc) == 0 || len(cbdt) == 0 {
		return nil, ErrNoStrikes
	}
	if len(cblc) < 8 {
		return nil, ErrInvalidStrikes
	}
	if major := binary.BigEndian.Uint16(cblc[0:2]); major != cblcMajorVersion {
		return nil, fmt.Errorf("sfnttab: unsupported CBLC version %d", major)
	}

	n := int(binary.BigEndian.Uint32(cblc[4:8]))
	if 8+n*sizeRecordLen > len(cblc) {
		return nil, ErrInvalidStrikes
	}

	s := &Strikes{cblc: cblc, cbdt: cbdt, strikes: make([]strike, n)}
	for i := range s.strikes {
		r := cblc[8+i*sizeRecordLen:]
		s.strikes[i] = strike{
			listOffset: binary.BigEndian.Uint32(r[0:4]),
			numLists:   binary.BigEndian.Uint32(r[8:12]),
			hori: LineMetrics{
				Ascender:  int8(r[16]),
				Descender: int8(r[17]),
				WidthMax:  r[18],
			},
			firstGlyph: binary.BigEndian.Uint16(r[40:42]),
			lastGlyph:  binary.BigEndian.Uint16(r[42:44]),
			ppem:       r[44],
		}
	}
	return s, nil
}

// Len returns the number of strikes.
func (s *Strikes) Len() int { return len(s.strikes) }

// PPEM returns the pixel size of strike i, or 0 when i is out of range.
func (s *Strikes) PPEM(i int) int {
	if i < 0 || i >= len(s.strikes) {
		return 0
	}
	return int(s.strikes[i].ppem)
}

// PPEMs lists the pixel sizes of all strikes in table order.
func (s *Strikes) PPEMs() []int {
	out := make([]int, len(s.strikes))
	for i := range s.strikes {
		out[i] = int(s.strikes[i].ppem)
	}
	return out
}

// LineMetrics returns the horizontal line metrics of strike i.
func (s *Strikes) LineMetrics(i int) LineMetrics {
	if i < 0 || i >= len(s.strikes) {
		return LineMetrics{}
	}
	return s.strikes[i].hori
}

// Select returns the strike whose size is closest to ppem, preferring the
// smallest strike not below it. Returns -1 when there are no strikes.
func (s *Strikes) Select(ppem int) int {
	if len(s.strikes) == 0 {
		return -1
	}
	above, largest := -1, 0
	for i := range s.strikes {
		p := int(s.strikes[i].ppem)
		if p > int(s.strikes[largest].ppem) {
			largest = i
		}
		if p >= ppem && (above < 0 || p < int(s.strikes[above].ppem)) {
			above = i
		}
	}
	if above >= 0 {
		return above
	}
	return largest
}

// Glyph returns the color image of gid in strike i.
func (s *Strikes) Glyph(gid uint16, i int) (StrikeGlyph, error) {
	if i < 0 || i >= len(s.strikes) {
		return StrikeGlyph{}, ErrGlyphNotInStrike
	}
	st := &s.strikes[i]
	if gid < st.firstGlyph || gid > st.lastGlyph {
		return StrikeGlyph{}, ErrGlyphNotInStrike
	}
	if err := s.loadSubtables(st); err != nil {
		return StrikeGlyph{}, err
	}
	for j := range st.subtables {
		sub := &st.subtables[j]
		if gid < sub.first || gid > sub.last {
			continue
		}
		off, size, ok := sub.locate(gid)
		if !ok || size == 0 {
			return StrikeGlyph{}, ErrGlyphNotInStrike
		}
		return s.decodeImage(off, size, sub)
	}
	return StrikeGlyph{}, ErrGlyphNotInStrike
}

func (s *Strikes) loadSubtables(st *strike) error {
	if st.subtables != nil {
		return nil
	}
	data := s.cblc
	base := int(st.listOffset)
	if base+int(st.numLists)*subtableEntryLen > len(data) {
		return ErrInvalidStrikes
	}

	subs := make([]subtable, st.numLists)
	for i := range subs {
		e := data[base+i*subtableEntryLen:]
		subs[i].first = binary.BigEndian.Uint16(e[0:2])
		subs[i].last = binary.BigEndian.Uint16(e[2:4])
		if subs[i].last < subs[i].first {
			return ErrInvalidStrikes
		}
		at := base + int(binary.BigEndian.Uint32(e[4:8]))
		if err := parseSubtable(data, at, &subs[i]); err != nil {
			return err
		}
	}
	st.subtables = subs
	return nil
}

func parseSubtable(data []byte, at int, sub *subtable) error {
	if at+subHeaderLen > len(data) {
		return ErrInvalidStrikes
	}
	sub.indexFormat = binary.BigEndian.Uint16(data[at : at+2])
	sub.imageFormat = binary.BigEndian.Uint16(data[at+2 : at+4])
	sub.dataOffset = binary.BigEndian.Uint32(data[at+4 : at+8])

	p := at + subHeaderLen
	count := int(sub.last) - int(sub.first) + 1

	switch sub.indexFormat {
	case 1, 3:
		width := 4
		if sub.indexFormat == 3 {
			width = 2
		}
		if p+(count+1)*width > len(data) {
			return ErrInvalidStrikes
		}
		sub.offsets = make([]uint32, count+1)
		for i := range sub.offsets {
			if width == 4 {
				sub.offsets[i] = binary.BigEndian.Uint32(data[p+i*4:])
			} else {
				sub.offsets[i] = uint32(binary.BigEndian.Uint16(data[p+i*2:]))
			}
		}

	case 2:
		if p+12 > len(data) {
			return ErrInvalidStrikes
		}
		sub.imageSize = binary.BigEndian.Uint32(data[p : p+4])
		sub.shared = bigMetrics(data[p+4 : p+12])

	case 4:
		if p+4 > len(data) {
			return ErrInvalidStrikes
		}
		n := int(binary.BigEndian.Uint32(data[p:p+4])) + 1
		p += 4
		if p+n*4 > len(data) {
			return ErrInvalidStrikes
		}
		sub.sparse = make([]uint16, n)
		sub.offsets = make([]uint32, n)
		for i := 0; i < n; i++ {
			sub.sparse[i] = binary.BigEndian.Uint16(data[p+i*4:])
			sub.offsets[i] = uint32(binary.BigEndian.Uint16(data[p+i*4+2:]))
		}

	case 5:
		if p+16 > len(data) {
			return ErrInvalidStrikes
		}
		sub.imageSize = binary.BigEndian.Uint32(data[p : p+4])
		sub.shared = bigMetrics(data[p+4 : p+12])
		n := int(binary.BigEndian.Uint32(data[p+12 : p+16]))
		p += 16
		if p+n*2 > len(data) {
			return ErrInvalidStrikes
		}
		sub.sparse = make([]uint16, n)
		for i := range sub.sparse {
			sub.sparse[i] = binary.BigEndian.Uint16(data[p+i*2:])
		}

	default:
		return fmt.Errorf("sfnttab: unsupported index subtable format %d", sub.indexFormat)
	}
	return nil
}

// locate returns the CBDT offset and length of gid's image record.
func (sub *subtable) locate(gid uint16) (uint32, uint32, bool) {
	rel := int(gid) - int(sub.first)
	switch sub.indexFormat {
	case 1, 3:
		if rel < 0 || rel+1 >= len(sub.offsets) || sub.offsets[rel+1] < sub.offsets[rel] {
			return 0, 0, false
		}
		return sub.dataOffset + sub.offsets[rel], sub.offsets[rel+1] - sub.offsets[rel], true
	case 2:
		return sub.dataOffset + uint32(rel)*sub.imageSize, sub.imageSize, true
	case 4:
		for i := 0; i+1 < len(sub.sparse); i++ {
			if sub.sparse[i] == gid && sub.offsets[i+1] >= sub.offsets[i] {
				return sub.dataOffset + sub.offsets[i], sub.offsets[i+1] - sub.offsets[i], true
			}
		}
	case 5:
		for i, g := range sub.sparse {
			if g == gid {
				return sub.dataOffset + uint32(i)*sub.imageSize, sub.imageSize, true
			}
		}
	}
	return 0, 0, false
}

func (s *Strikes) decodeImage(off, size uint32, sub *subtable) (StrikeGlyph, error) {
	if uint64(off)+uint64(size) > uint64(len(s.cbdt)) {
		return StrikeGlyph{}, ErrInvalidStrikes
	}
	rec := s.cbdt[off : off+size]

	var m glyphMetrics
	var head int
	switch sub.imageFormat {
	case 17:
		if len(rec) < 9 {
			return StrikeGlyph{}, ErrInvalidStrikes
		}
		m = glyphMetrics{
			height:   rec[0],
			width:    rec[1],
			bearingX: int8(rec[2]),
			bearingY: int8(rec[3]),
			advance:  rec[4],
		}
		head = 5
	case 18:
		if len(rec) < 12 {
			return StrikeGlyph{}, ErrInvalidStrikes
		}
		m = bigMetrics(rec[0:8])
		head = 8
	case 19:
		m = sub.shared
	default:
		return StrikeGlyph{}, fmt.Errorf("sfnttab: unsupported image format %d", sub.imageFormat)
	}

	if len(rec) < head+4 {
		return StrikeGlyph{}, ErrInvalidStrikes
	}
	n := binary.BigEndian.Uint32(rec[head : head+4])
	if uint64(head+4)+uint64(n) > uint64(len(rec)) {
		return StrikeGlyph{}, ErrInvalidStrikes
	}

	return StrikeGlyph{
		Data:     rec[head+4 : head+4+int(n)],
		Width:    int(m.width),
		Height:   int(m.height),
		BearingX: int(m.bearingX),
		BearingY: int(m.bearingY),
		Advance:  int(m.advance),
	}, nil
}

// bigMetrics reads the horizontal half of a BigGlyphMetrics record.
func bigMetrics(b []byte) glyphMetrics {
	return glyphMetrics{
		height:   b[0],
		width:    b[1],
		bearingX: int8(b[2]),
		bearingY: int8(b[3]),
		advance:  b[4],
	}
}
