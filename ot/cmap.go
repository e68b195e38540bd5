package ot

import (
	"fmt"
)

// Platform IDs and Platform Specific IDs as per
// https://learn.microsoft.com/en-us/typography/opentype/spec/cmap#platform-ids
const (
	pidUnicode = 0
	pidWindows = 3

	psidWindowsUCS2 = 1
	psidWindowsUCS4 = 10
)

// Layout of the cmap header and of format 4 subtables.
const (
	cmapNumTablesOffset  = 2
	cmapRecordsOffset    = 4
	cmapRecordSize       = 8 // platformID, encodingID, subtable offset
	cmapRecordSubtableAt = 4

	cmapSubtableFormat4    = 4
	format4SegCountX2      = 6
	format4EndCodes        = 14 // format, length, language, segCountX2, searchRange, entrySelector, rangeShift
	format4ReservedPadSize = sizeUint16
)

// The value is arbitrary, but defends against parsing malicious font files.
// For reference, Adobe's SourceHanSansSC-Regular.otf has 1581 segments in its
// format 4 cmap subtable.
const maxCMapSegments = 20000

// unicodeBMP reports whether a cmap encoding record denotes a Unicode encoding
// of (at least) the Basic Multilingual Plane.
func unicodeBMP(pid, psid uint16) bool {
	switch pid {
	case pidUnicode:
		return true
	case pidWindows:
		return psid == psidWindowsUCS2 || psid == psidWindowsUCS4
	}
	return false
}

// cmapFormat4 is a located 'segment mapping to delta values' subtable.
// Fields hold absolute offsets of the four parallel segment arrays.
type cmapFormat4 struct {
	data           binarySegm
	offset         int // start of the subtable
	segCount       int
	endCodes       int
	startCodes     int
	idDeltas       int
	idRangeOffsets int
}

// findCMapSubtable selects a format 4 subtable of the cmap table starting at
// offset cmap. Subtables for a Unicode BMP encoding are preferred, otherwise the
// first format 4 subtable is used.
func findCMapSubtable(b binarySegm, cmap int) (*cmapFormat4, error) {
	n, err := b.u16(cmap + cmapNumTablesOffset)
	if err != nil {
		return nil, fontError(TagCmap, "Header", SeverityCritical, cmap, err)
	}
	tracer().Debugf("font cmap has %d sub-tables", n)
	fallback := -1
	for i := 0; i < int(n); i++ {
		at := cmap + cmapRecordsOffset + i*cmapRecordSize
		rec, err := b.view(at, cmapRecordSize)
		if err != nil {
			return nil, fontError(TagCmap, "EncodingRecords", SeverityCritical, at, err)
		}
		pid, psid := u16(rec), u16(rec[2:])
		sub := cmap + int(u32(rec[cmapRecordSubtableAt:]))
		format, err := b.u16(sub)
		if err != nil {
			return nil, fontError(TagCmap, "Subtable", SeverityCritical, sub, err)
		}
		tracer().Debugf("cmap sub-table %d: platform=%d, encoding=%d, format=%d", i, pid, psid, format)
		if format != cmapSubtableFormat4 {
			continue
		}
		if unicodeBMP(pid, psid) {
			return newCMapFormat4(b, sub)
		}
		if fallback < 0 {
			fallback = sub
		}
	}
	if fallback < 0 {
		return nil, fontError(TagCmap, "Format", SeverityCritical, cmap, ErrUnsupportedCMap)
	}
	return newCMapFormat4(b, fallback)
}

// newCMapFormat4 locates the segment arrays of a format 4 subtable:
// endCode[segCount], reservedPad, startCode[segCount], idDelta[segCount],
// idRangeOffset[segCount], followed by the glyph id array.
func newCMapFormat4(b binarySegm, sub int) (*cmapFormat4, error) {
	segCountX2, err := b.u16(sub + format4SegCountX2)
	if err != nil {
		return nil, fontError(TagCmap, "Format4", SeverityCritical, sub, err)
	}
	segCount := int(segCountX2) / 2
	if segCount > maxCMapSegments {
		return nil, fontError(TagCmap, "Format4", SeverityCritical, sub,
			fmt.Errorf("%w: more than %d cmap segments", ErrUnsupportedCMap, maxCMapSegments))
	}
	arraySize := segCount * sizeUint16
	t := &cmapFormat4{
		data:     b,
		offset:   sub,
		segCount: segCount,
		endCodes: sub + format4EndCodes,
	}
	t.startCodes = t.endCodes + arraySize + format4ReservedPadSize
	t.idDeltas = t.startCodes + arraySize
	t.idRangeOffsets = t.idDeltas + arraySize
	// the segment arrays must be readable as a whole
	if segCount > 0 {
		if _, err := b.view(t.endCodes, t.idRangeOffsets+arraySize-t.endCodes); err != nil {
			return nil, fontError(TagCmap, "Segments", SeverityCritical, t.endCodes, err)
		}
	}
	tracer().Debugf("cmap format 4 sub-table at %d has %d segments", sub, segCount)
	return t, nil
}

// CMapSegment is a segment of a format 4 cmap subtable.
type CMapSegment struct {
	Start, End    uint16
	Delta         uint16 // arithmetic on Delta is modulo 65536
	IDRangeOffset uint16 // 0, or offset to the glyph id array, relative to the field's own position
}

func (t *cmapFormat4) segment(i int) (seg CMapSegment, err error) {
	if seg.End, err = t.data.u16(t.endCodes + i*sizeUint16); err != nil {
		return
	}
	if seg.Start, err = t.data.u16(t.startCodes + i*sizeUint16); err != nil {
		return
	}
	if seg.Delta, err = t.data.u16(t.idDeltas + i*sizeUint16); err != nil {
		return
	}
	seg.IDRangeOffset, err = t.data.u16(t.idRangeOffsets + i*sizeUint16)
	return
}

// lookup maps a code point to a glyph index. The segment searched for is the
// first one with an end code ≥ c; as end codes are sorted in ascending order,
// a binary search finds it. Code points outside the BMP map to NotDef.
func (t *cmapFormat4) lookup(r rune) (GlyphIndex, error) {
	if r < 0 || r > 0xffff {
		return NotDef, nil
	}
	c := uint16(r)
	i, j := 0, t.segCount
	for i < j {
		h := i + (j-i)/2
		end, err := t.data.u16(t.endCodes + h*sizeUint16)
		if err != nil {
			return NotDef, fontError(TagCmap, "EndCodes", SeverityCritical, t.endCodes, err)
		}
		if end < c {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == t.segCount {
		return NotDef, nil
	}
	seg, err := t.segment(i)
	if err != nil {
		return NotDef, fontError(TagCmap, "Segments", SeverityCritical, t.offset, err)
	}
	if seg.Start > c {
		return NotDef, nil
	}
	if seg.IDRangeOffset == 0 {
		return GlyphIndex(c + seg.Delta), nil
	}
	// idRangeOffset is relative to its own position within the idRangeOffset array
	at := t.idRangeOffsets + i*sizeUint16 + int(seg.IDRangeOffset) + int(c-seg.Start)*sizeUint16
	g, err := t.data.u16(at)
	if err != nil {
		return NotDef, fontError(TagCmap, "GlyphIdArray", SeverityCritical, at, err)
	}
	if g == 0 {
		return NotDef, nil
	}
	return GlyphIndex(g + seg.Delta), nil
}

// GlyphIndex maps a Unicode code point to a glyph index, using the font's
// format 4 cmap subtable. Characters not covered by the font map to NotDef.
func (otf *Font) GlyphIndex(r rune) (GlyphIndex, error) {
	if otf.cmap == nil {
		return NotDef, fontError(TagCmap, "Format", SeverityCritical, 0, ErrUnsupportedCMap)
	}
	return otf.cmap.lookup(r)
}

// CMapSegments returns the segments of the font's format 4 cmap subtable.
func (otf *Font) CMapSegments() ([]CMapSegment, error) {
	if otf.cmap == nil {
		return nil, fontError(TagCmap, "Format", SeverityCritical, 0, ErrUnsupportedCMap)
	}
	segs := make([]CMapSegment, otf.cmap.segCount)
	for i := range segs {
		seg, err := otf.cmap.segment(i)
		if err != nil {
			return nil, fontError(TagCmap, "Segments", SeverityCritical, otf.cmap.offset, err)
		}
		segs[i] = seg
	}
	return segs, nil
}
