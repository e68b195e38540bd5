package ot

import "fmt"

// Field offsets within tables 'maxp' and 'head'.
const (
	maxpNumGlyphsOffset        = 4  // version (Fixed)
	headIndexToLocFormatOffset = 50 // see otquery.HeadTableInfo for the preceding fields
)

// Values of field indexToLocFormat in table 'head'.
const (
	locaFormatShort = 0 // uint16 entries, holding offset/2
	locaFormatLong  = 1 // uint32 entries, holding the offset
)

// Locations is the decoded 'loca' table: byte offsets of glyph descriptions,
// relative to the start of table 'glyf'. There is one entry per glyph plus a
// trailing sentinel, so the description of glyph i occupies
// [Locations[i], Locations[i+1]).
type Locations []uint32

// NumGlyphs returns the number of glyphs covered by the location table.
func (loc Locations) NumGlyphs() int {
	if len(loc) == 0 {
		return 0
	}
	return len(loc) - 1
}

// Range returns the extent of the glyph description for a glyph, relative to
// table 'glyf'.
func (loc Locations) Range(gid GlyphIndex) (start, end uint32, err error) {
	if int(gid) >= loc.NumGlyphs() {
		return 0, 0, fmt.Errorf("%w: glyph %d, font has %d glyphs", ErrGlyphRange, gid, loc.NumGlyphs())
	}
	start, end = loc[gid], loc[gid+1]
	if end < start {
		return 0, 0, fontError(TagLoca, "Offsets", SeverityMajor, 0,
			fmt.Errorf("%w: glyph %d has decreasing offsets %d > %d", ErrMalformedGlyph, gid, start, end))
	}
	return start, end, nil
}

// IsEmpty reports whether a glyph has no outline data, as is the case for
// glyphs like 'space'. Glyphs outside the table count as empty.
func (loc Locations) IsEmpty(gid GlyphIndex) bool {
	start, end, err := loc.Range(gid)
	return err != nil || start == end
}

// ParseLocations reads the glyph count from table 'maxp', the location format
// from table 'head' and decodes table 'loca'. All three tables must be present
// in dir.
func ParseLocations(font []byte, dir TableDirectory) (Locations, error) {
	b := binarySegm(font)
	offsets := make(map[Tag]int, 3)
	for _, tag := range []Tag{TagMaxp, TagHead, TagLoca} {
		off, ok := dir.Offset(tag)
		if !ok {
			return nil, fontError(tag, "Directory", SeverityCritical, 0, ErrMissingTable)
		}
		offsets[tag] = off
	}
	n, err := readNumGlyphs(b, offsets[TagMaxp])
	if err != nil {
		return nil, err
	}
	format, err := readLocaFormat(b, offsets[TagHead])
	if err != nil {
		return nil, err
	}
	return readLocations(b, offsets[TagLoca], n, format)
}

// readNumGlyphs reads the number of glyphs from table 'maxp'.
func readNumGlyphs(b binarySegm, maxp int) (int, error) {
	n, err := b.u16(maxp + maxpNumGlyphsOffset)
	if err != nil {
		return 0, fontError(TagMaxp, "NumGlyphs", SeverityCritical, maxp+maxpNumGlyphsOffset, err)
	}
	return int(n), nil
}

// readLocaFormat reads field indexToLocFormat from table 'head'.
func readLocaFormat(b binarySegm, head int) (int16, error) {
	format, err := b.i16(head + headIndexToLocFormatOffset)
	if err != nil {
		return 0, fontError(TagHead, "IndexToLocFormat", SeverityCritical, head+headIndexToLocFormatOffset, err)
	}
	return format, nil
}

// readLocations decodes numGlyphs+1 entries of table 'loca'. Short entries
// store half of the actual offset. Any format other than 0 denotes long entries.
func readLocations(b binarySegm, loca int, numGlyphs int, format int16) (Locations, error) {
	tracer().Debugf("loca table has format %d, %d glyphs", format, numGlyphs)
	locs := make(Locations, numGlyphs+1)
	for i := range locs {
		if format == locaFormatShort {
			at := loca + i*sizeUint16
			n, err := b.u16(at)
			if err != nil {
				return nil, fontError(TagLoca, "Offsets", SeverityCritical, at, err)
			}
			locs[i] = uint32(n) * 2
		} else {
			at := loca + i*sizeUint32
			n, err := b.u32(at)
			if err != nil {
				return nil, fontError(TagLoca, "Offsets", SeverityCritical, at, err)
			}
			locs[i] = n
		}
	}
	return locs, nil
}
