package ot

import (
	"errors"
	"fmt"
)

// Code comments often will cite passages from the
// OpenType specification version 1.9;
// see https://learn.microsoft.com/en-us/typography/opentype/spec/.

// ParseOption guides and influences the parsing of the font.
type ParseOption int

const (
	// SubstituteMissingTables lets Parse substitute offset 0 for required tables
	// missing from the table directory, instead of failing. Decoding such a font
	// will usually fail later with ErrBufferBounds or produce nonsensical output;
	// the option exists for inspecting broken fonts.
	SubstituteMissingTables ParseOption = iota
)

func hasOption(opts []ParseOption, opt ParseOption) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}

// Known values of the sfnt version field.
const (
	fontTypeTrueType = 0x00010000
	fontTypeApple    = 0x74727565 // 'true'
	fontTypeCFF      = 0x4f54544f // 'OTTO'
)

// Parse parses a TrueType font from a byte slice. It resolves the table
// directory, reads the glyph count and the location table and locates the
// format 4 cmap subtable. Glyph outlines are decoded on demand.
//
// A font without a format 4 cmap subtable is accepted: glyphs can still be
// decoded by index, but character lookups fail with ErrUnsupportedCMap.
//
// An ot.Font needs ongoing access to the font's byte-data after the Parse function
// returns. Its elements are assumed immutable while the ot.Font remains in use.
func Parse(font []byte, opts ...ParseOption) (*Font, error) {
	src := binarySegm(font)
	fontType, err := src.u32(0)
	if err != nil {
		return nil, fontError(0, "Header", SeverityCritical, 0, err)
	}
	if !(fontType == fontTypeTrueType || fontType == fontTypeApple || fontType == fontTypeCFF) {
		return nil, fontError(0, "Header", SeverityCritical, 0,
			fmt.Errorf("%w: %x", ErrFontType, fontType))
	}
	dir, err := ParseTableDirectory(font)
	if err != nil {
		return nil, err
	}
	otf := &Font{
		Header:    FontHeader{FontType: fontType},
		binary:    src,
		directory: dir,
	}
	otf.Header.TableCount, _ = src.u16(headerTableCountOffset)
	tracer().Debugf("header = %v, tag = %x|%s", otf.Header, fontType, Tag(fontType).String())

	offsets := make(map[Tag]int, len(RequiredTables))
	for _, tag := range RequiredTables {
		off, ok := dir.Offset(tag)
		if !ok {
			if !hasOption(opts, SubstituteMissingTables) {
				return nil, fontError(tag, "Directory", SeverityCritical, 0, ErrMissingTable)
			}
			tracer().Infof("font has no table %s, substituting offset 0", tag)
		}
		offsets[tag] = off
	}
	if otf.numGlyphs, err = readNumGlyphs(src, offsets[TagMaxp]); err != nil {
		return nil, err
	}
	format, err := readLocaFormat(src, offsets[TagHead])
	if err != nil {
		return nil, err
	}
	if otf.locations, err = readLocations(src, offsets[TagLoca], otf.numGlyphs, format); err != nil {
		return nil, err
	}
	if otf.cmap, err = findCMapSubtable(src, offsets[TagCmap]); err != nil {
		if !errors.Is(err, ErrUnsupportedCMap) {
			return nil, err
		}
		tracer().Infof("font has no usable cmap subtable, glyphs are reachable by index only")
	}
	otf.glyf = offsets[TagGlyf]
	return otf, nil
}
