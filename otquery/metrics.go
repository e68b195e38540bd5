package otquery

import (
	"github.com/rhamzthev/rich-text/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// FontType returns the font type, derived from the sfnt version of the font header.
func FontType(otf *ot.Font) string {
	switch otf.Header.FontType {
	case 0x00010000, 0x74727565:
		return "TrueType"
	case 0x4f54544f:
		return "OpenType"
	}
	return "unknown"
}

// --- Glyph Information ------------------------------------------------

// GlyphIndex returns the glyph index for a given code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) ot.GlyphIndex {
	gid, err := otf.GlyphIndex(codepoint)
	if err != nil {
		tracer().Errorf("cannot look up %#U: %v", codepoint, err)
		return ot.NotDef
	}
	return gid
}

// CodePointForGlyph returns the code-point for a given glyph index.
//
// This is an inefficient operation: All code-points contained in the font's CMap
// are checked sequentially if they produce the given glyph.
// If the glyph index does not correspond to a code-point, 0 is returned.
// If more than one code-point maps to the glyph, the smallest one is returned.
func CodePointForGlyph(otf *ot.Font, gid ot.GlyphIndex) rune {
	if gid == ot.NotDef {
		return 0
	}
	segments, err := otf.CMapSegments()
	if err != nil {
		return 0
	}
	for _, seg := range segments {
		for c := int(seg.Start); c <= int(seg.End) && c < 0xffff; c++ {
			if g, err := otf.GlyphIndex(rune(c)); err == nil && g == gid {
				return rune(c)
			}
		}
	}
	return 0
}

// GlyphBounds returns the bounding box of a glyph as recorded in its glyph
// header. Other than decoding the outline, this works for composite glyphs as
// well. Glyphs without outline have an empty bounding box.
func GlyphBounds(otf *ot.Font, gid ot.GlyphIndex) (BoundingBox, error) {
	start, end, err := otf.Locations().Range(gid)
	if err != nil || start == end {
		return BoundingBox{}, err
	}
	glyf := otf.TableBytes(ot.TagGlyf)
	if int(start)+10 > len(glyf) {
		return BoundingBox{}, ot.FontError{
			Table:    ot.TagGlyf,
			Section:  "Header",
			Severity: ot.SeverityMajor,
			Offset:   start,
			Err:      ot.ErrBufferBounds,
		}
	}
	b := glyf[start:]
	return BoundingBox{
		MinX: sfnt.Units(i16(b[2:])),
		MinY: sfnt.Units(i16(b[4:])),
		MaxX: sfnt.Units(i16(b[6:])),
		MaxY: sfnt.Units(i16(b[8:])),
	}, nil
}

// OutlineStats counts contours and points of a decoded outline.
func OutlineStats(g ot.SimpleGlyph) OutlineInfo {
	info := OutlineInfo{Contours: len(g.Contours)}
	for _, c := range g.Contours {
		for _, p := range c.Points {
			info.Points++
			if p.OnCurve {
				info.OnCurve++
			} else {
				info.OffCurve++
			}
		}
	}
	return info
}
