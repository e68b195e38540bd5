package ot

import (
	"sort"
)

// Font represents the internal structure of a TrueType font, as far as it is
// needed for decoding glyph outlines.
//
// A Font is created by Parse and is immutable afterwards. It references the
// font's binary without copying it; clients must not alter the binary while
// the Font is in use.
type Font struct {
	Header    FontHeader
	binary    binarySegm
	directory TableDirectory
	locations Locations // one entry per glyph plus a trailing sentinel
	numGlyphs int
	cmap      *cmapFormat4
	glyf      int // offset of table glyf
}

// FontHeader holds the fields preceding the table records of a font.
//
// TrueType fonts use the value 0x00010000 for FontType. The Apple
// specification allows for 'true' as well. Fonts with CFF data use 'OTTO'.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Binary returns the font's raw bytes. Clients should treat them as read-only.
func (otf *Font) Binary() []byte {
	return otf.binary
}

// Directory returns the font's table directory.
func (otf *Font) Directory() TableDirectory {
	return otf.directory
}

// Table returns the table record for a given tag.
// If a table for a tag cannot be found in the font, false is returned.
func (otf *Font) Table(tag Tag) (TableRecord, bool) {
	rec, ok := otf.directory[tag]
	return rec, ok
}

// TableBytes returns the bytes of the table for a given tag, or nil if the
// font does not contain the table or the table's extent exceeds the binary.
func (otf *Font) TableBytes(tag Tag) []byte {
	rec, ok := otf.directory[tag]
	if !ok {
		return nil
	}
	b, err := otf.binary.view(int(rec.Offset), int(rec.Length))
	if err != nil {
		return nil
	}
	return b
}

// TableTags returns a list of tags, one for each table contained in the font,
// in ascending order.
func (otf *Font) TableTags() []Tag {
	return otf.directory.Tags()
}

// NumGlyphs returns the number of glyphs as stated by table 'maxp'.
func (otf *Font) NumGlyphs() int {
	return otf.numGlyphs
}

// Locations returns the font's location table. It has NumGlyphs()+1 entries.
func (otf *Font) Locations() Locations {
	return otf.locations
}

// GlyphIndex is a glyph index in a font.
// Glyph index 0 is the 'missing glyph' (.notdef).
type GlyphIndex uint16

// NotDef is the glyph index for characters not mapped by a font.
const NotDef GlyphIndex = 0

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// Tags of the tables needed for outline decoding.
var (
	TagCmap = T("cmap")
	TagGlyf = T("glyf")
	TagHead = T("head")
	TagLoca = T("loca")
	TagMaxp = T("maxp")
)

// RequiredTables lists the tables every stage of outline decoding depends on.
var RequiredTables = []Tag{TagHead, TagMaxp, TagLoca, TagCmap, TagGlyf}

// sortTags sorts tags in ascending order.
func sortTags(tags []Tag) {
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
}
