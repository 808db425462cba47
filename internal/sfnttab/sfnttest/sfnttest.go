// Package sfnttest builds minimal SFNT fonts and tables for tests.
package sfnttest

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

const (
	offsetTableSize = 12
	tableRecordSize = 16

	sizeRecordLen    = 48
	subtableEntryLen = 8
	subHeaderLen     = 8
)

// Font assembles a single SFNT file from raw tables keyed by tag.
func Font(tables map[string][]byte) []byte {
	return fontAt(tables, 0)
}

// fontAt assembles an SFNT whose table offsets assume the font starts at base.
func fontAt(tables map[string][]byte, base int) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	head := offsetTableSize + len(tags)*tableRecordSize
	out := make([]byte, head)
	binary.BigEndian.PutUint32(out[0:4], 0x00010000)
	binary.BigEndian.PutUint16(out[4:6], uint16(len(tags)))

	for i, tag := range tags {
		r := out[offsetTableSize+i*tableRecordSize:]
		copy(r[0:4], tag)
		binary.BigEndian.PutUint32(r[8:12], uint32(base+len(out)))
		binary.BigEndian.PutUint32(r[12:16], uint32(len(tables[tag])))
		out = append(out, tables[tag]...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

// Collection wraps faces into a ttcf container.
func Collection(faces ...map[string][]byte) []byte {
	header := 12 + 4*len(faces)
	out := make([]byte, header)
	copy(out[0:4], "ttcf")
	binary.BigEndian.PutUint32(out[4:8], 0x00010000)
	binary.BigEndian.PutUint32(out[8:12], uint32(len(faces)))
	for i, f := range faces {
		binary.BigEndian.PutUint32(out[12+i*4:], uint32(len(out)))
		out = append(out, fontAt(f, len(out))...)
	}
	return out
}

// OS2 returns a version 0 OS/2 table.
func OS2(weight, selection uint16, strikeSize, strikePos int16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[4:6], weight)
	binary.BigEndian.PutUint16(b[26:28], uint16(strikeSize))
	binary.BigEndian.PutUint16(b[28:30], uint16(strikePos))
	binary.BigEndian.PutUint16(b[62:64], selection)
	return b
}

// Name returns a name table with Windows Unicode English family (ID 1) and
// subfamily (ID 2) records.
func Name(family, style string) []byte {
	strs := [][]byte{utf16BE(family), utf16BE(style)}
	b := make([]byte, 6+len(strs)*12)
	binary.BigEndian.PutUint16(b[2:4], uint16(len(strs)))
	binary.BigEndian.PutUint16(b[4:6], uint16(len(b)))

	var data []byte
	for i, str := range strs {
		r := b[6+i*12:]
		binary.BigEndian.PutUint16(r[0:2], 3)      // Windows
		binary.BigEndian.PutUint16(r[2:4], 1)      // Unicode BMP
		binary.BigEndian.PutUint16(r[4:6], 0x0409) // en-US
		binary.BigEndian.PutUint16(r[6:8], uint16(i+1))
		binary.BigEndian.PutUint16(r[8:10], uint16(len(str)))
		binary.BigEndian.PutUint16(r[10:12], uint16(len(data)))
		data = append(data, str...)
	}
	return append(b, data...)
}

func utf16BE(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

// Post returns a version 3 post table.
func Post(pos, thickness int16) []byte {
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:4], 0x00030000)
	binary.BigEndian.PutUint16(b[8:10], uint16(pos))
	binary.BigEndian.PutUint16(b[10:12], uint16(thickness))
	return b
}

// Strike describes one bitmap strike.
type Strike struct {
	PPEM   uint8
	Ascent int8
	First  uint16   // glyph id of Images[0]
	Images [][]byte // one PNG payload per glyph
}

// Strikes encodes CBLC/CBDT tables with one format 1 index subtable and
// format 17 images per strike. Image j gets width 12+j, height 10, bearing
// (1, 9) and advance 13.
func Strikes(strikes []Strike) (cblc, cbdt []byte) {
	cbdt = []byte{0, 3, 0, 0}

	cblc = make([]byte, 8+len(strikes)*sizeRecordLen)
	binary.BigEndian.PutUint16(cblc[0:2], 3)
	binary.BigEndian.PutUint32(cblc[4:8], uint32(len(strikes)))

	for i, s := range strikes {
		last := s.First + uint16(len(s.Images)) - 1
		dataOffset := uint32(len(cbdt))

		offsets := make([]uint32, 0, len(s.Images)+1)
		for j, img := range s.Images {
			offsets = append(offsets, uint32(len(cbdt))-dataOffset)
			rec := []byte{10, 12, 1, 9, 13}
			rec[1] += byte(j)
			rec = binary.BigEndian.AppendUint32(rec, uint32(len(img)))
			rec = append(rec, img...)
			cbdt = append(cbdt, rec...)
		}
		offsets = append(offsets, uint32(len(cbdt))-dataOffset)

		listOffset := uint32(len(cblc))
		list := make([]byte, subtableEntryLen)
		binary.BigEndian.PutUint16(list[0:2], s.First)
		binary.BigEndian.PutUint16(list[2:4], last)
		binary.BigEndian.PutUint32(list[4:8], subtableEntryLen)

		sub := make([]byte, subHeaderLen)
		binary.BigEndian.PutUint16(sub[0:2], 1)
		binary.BigEndian.PutUint16(sub[2:4], 17)
		binary.BigEndian.PutUint32(sub[4:8], dataOffset)
		for _, o := range offsets {
			sub = binary.BigEndian.AppendUint32(sub, o)
		}
		cblc = append(cblc, list...)
		cblc = append(cblc, sub...)

		r := cblc[8+i*sizeRecordLen:]
		binary.BigEndian.PutUint32(r[0:4], listOffset)
		binary.BigEndian.PutUint32(r[4:8], uint32(len(list)+len(sub)))
		binary.BigEndian.PutUint32(r[8:12], 1)
		r[16] = byte(s.Ascent)
		r[17] = byte(int8(-s.Ascent / 4))
		r[18] = s.PPEM
		binary.BigEndian.PutUint16(r[40:42], s.First)
		binary.BigEndian.PutUint16(r[42:44], last)
		r[44], r[45] = s.PPEM, s.PPEM
		r[46] = 32
	}
	return cblc, cbdt
}
