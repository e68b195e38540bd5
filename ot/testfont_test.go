package ot

import (
	"sort"
)

// Helpers to assemble minimal synthetic TrueType fonts for tests.

func putU16(b []byte, at int, v uint16) {
	b[at] = byte(v >> 8)
	b[at+1] = byte(v)
}

func putU32(b []byte, at int, v uint32) {
	b[at] = byte(v >> 24)
	b[at+1] = byte(v >> 16)
	b[at+2] = byte(v >> 8)
	b[at+3] = byte(v)
}

func be16(vs ...uint16) []byte {
	b := make([]byte, 2*len(vs))
	for i, v := range vs {
		putU16(b, 2*i, v)
	}
	return b
}

type testSegment struct {
	start, end    uint16
	delta         uint16
	idRangeOffset uint16
}

// delta returns the idDelta mapping code point c to glyph g.
func delta(c rune, g GlyphIndex) uint16 {
	return uint16(g) - uint16(c)
}

type testFont struct {
	locaFormat   int16
	cmapPID      uint16
	cmapPSID     uint16
	segments     []testSegment // the 0xFFFF sentinel segment is appended
	glyphIDArray []uint16
	glyphs       [][]byte // glyph descriptions, indexed by glyph ID
	omit         []string // tables to leave out
	extra        map[string][]byte
}

func (tf testFont) cmap() []byte {
	segs := append(append([]testSegment{}, tf.segments...), testSegment{0xffff, 0xffff, 1, 0})
	n := len(segs)
	sub := be16(4, uint16(16+8*n+2*len(tf.glyphIDArray)), 0, uint16(2*n), 0, 0, 0)
	for _, s := range segs {
		sub = append(sub, be16(s.end)...)
	}
	sub = append(sub, 0, 0) // reservedPad
	for _, s := range segs {
		sub = append(sub, be16(s.start)...)
	}
	for _, s := range segs {
		sub = append(sub, be16(s.delta)...)
	}
	for _, s := range segs {
		sub = append(sub, be16(s.idRangeOffset)...)
	}
	sub = append(sub, be16(tf.glyphIDArray...)...)
	pid, psid := tf.cmapPID, tf.cmapPSID
	if pid == 0 && psid == 0 {
		pid, psid = 3, 1
	}
	head := be16(0, 1, pid, psid, 0, 12)
	return append(head, sub...)
}

func (tf testFont) glyfAndLoca() (glyf, loca []byte) {
	offsets := make([]uint32, 0, len(tf.glyphs)+1)
	for _, g := range tf.glyphs {
		offsets = append(offsets, uint32(len(glyf)))
		glyf = append(glyf, g...)
		if len(glyf)%2 != 0 {
			glyf = append(glyf, 0)
		}
	}
	offsets = append(offsets, uint32(len(glyf)))
	for _, off := range offsets {
		if tf.locaFormat == 0 {
			loca = append(loca, be16(uint16(off/2))...)
		} else {
			b := make([]byte, 4)
			putU32(b, 0, off)
			loca = append(loca, b...)
		}
	}
	return
}

func (tf testFont) head() []byte {
	b := make([]byte, 54)
	putU16(b, 0, 1)
	putU32(b, 12, 0x5f0f3cf5)
	putU16(b, 18, 1000)
	putU16(b, 50, uint16(tf.locaFormat))
	return b
}

func (tf testFont) maxp() []byte {
	b := make([]byte, 6)
	putU32(b, 0, 0x00005000)
	putU16(b, 4, uint16(len(tf.glyphs)))
	return b
}

func (tf testFont) tables() map[string][]byte {
	glyf, loca := tf.glyfAndLoca()
	tables := map[string][]byte{
		"cmap": tf.cmap(),
		"glyf": glyf,
		"head": tf.head(),
		"loca": loca,
		"maxp": tf.maxp(),
	}
	for _, tag := range tf.omit {
		delete(tables, tag)
	}
	for tag, t := range tf.extra {
		tables[tag] = t
	}
	return tables
}

// build assembles the font binary: header, table records sorted by tag,
// tables 4-byte aligned.
func (tf testFont) build() []byte {
	tables := tf.tables()
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	font := make([]byte, 12+16*len(tags))
	putU32(font, 0, 0x00010000)
	putU16(font, 4, uint16(len(tags)))
	for i, tag := range tags {
		for len(font)%4 != 0 {
			font = append(font, 0)
		}
		rec := 12 + 16*i
		copy(font[rec:], tag)
		putU32(font, rec+8, uint32(len(font)))
		putU32(font, rec+12, uint32(len(tables[tag])))
		font = append(font, tables[tag]...)
	}
	return font
}

// simpleGlyph encodes a simple glyph description.
func simpleGlyph(bbox [4]int16, endPts []uint16, instructions, flags, xs, ys []byte) []byte {
	b := be16(uint16(len(endPts)), uint16(bbox[0]), uint16(bbox[1]), uint16(bbox[2]), uint16(bbox[3]))
	b = append(b, be16(endPts...)...)
	b = append(b, be16(uint16(len(instructions)))...)
	b = append(b, instructions...)
	b = append(b, flags...)
	b = append(b, xs...)
	b = append(b, ys...)
	return b
}

// compositeGlyph encodes a composite glyph with a single component.
func compositeGlyph(component GlyphIndex) []byte {
	b := be16(0xffff, 0, 0, 500, 700) // numberOfContours = -1
	// flags ARGS_ARE_XY_VALUES, glyph index, two byte arguments
	b = append(b, be16(0x0002, uint16(component))...)
	return append(b, 0, 0)
}

// Glyph IDs of the standard test font.
const (
	gidNotDef GlyphIndex = iota
	gidSpace
	gidTriangle
	gidTwoContours
	gidComposite
	gidMalformed
)

// triangle is a glyph with one contour of three on-curve points, with short
// positive x-deltas 10, 5, 3 and repeated y-coordinates.
var triangle = simpleGlyph(
	[4]int16{10, 0, 18, 0},
	[]uint16{2},
	nil,
	[]byte{0x33, 0x33, 0x33},
	[]byte{10, 5, 3},
	nil,
)

// twoContours exercises instructions, a repeated flag, negative short vectors
// and long vectors.
var twoContours = simpleGlyph(
	[4]int16{-1, -2, 400, 300}, // deliberately not matching the points
	[]uint16{1, 4},
	[]byte{0xaa, 0xbb, 0xcc},
	[]byte{0x01, 0x06, 0x09, 0x02},
	[]byte{0x00, 0x64, 20, 0xff, 0xce, 0x01, 0x2c, 0x00, 0x00},
	[]byte{0x00, 0xc8, 50, 0x00, 0x0a, 0xff, 0xec, 0x00, 0x05},
)

// malformed has decreasing end points.
var malformed = simpleGlyph(
	[4]int16{0, 0, 10, 10},
	[]uint16{3, 2},
	nil,
	[]byte{0x37, 0x37, 0x37, 0x37},
	[]byte{1, 1, 1, 1},
	[]byte{1, 1, 1, 1},
)

// standardTestFont maps ' ' to an empty glyph and 'A'…'D' to glyphs 2…5.
func standardTestFont() testFont {
	return testFont{
		segments: []testSegment{
			{start: ' ', end: ' ', delta: delta(' ', gidSpace)},
			{start: 'A', end: 'D', delta: delta('A', gidTriangle)},
		},
		glyphs: [][]byte{
			gidNotDef:      nil,
			gidSpace:       nil,
			gidTriangle:    triangle,
			gidTwoContours: twoContours,
			gidComposite:   compositeGlyph(gidTriangle),
			gidMalformed:   malformed,
		},
	}
}
