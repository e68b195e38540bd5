package ot

import (
	"encoding/json"
	"errors"
	"sort"
)

// DecodedFont holds the outlines decoded for a set of characters.
//
// Characters without an outline (unmapped characters, whitespace, composite
// glyphs) are not contained in Glyphs. Characters which failed to decode are
// listed in Failed, with a CharError each.
type DecodedFont struct {
	Glyphs map[rune]SimpleGlyph
	Failed map[rune]error
}

// DecodeFont decodes the outlines for a set of characters.
//
// A failure to decode one character does not affect the other characters; it
// is recorded in DecodedFont.Failed. Duplicates in chars are harmless, but
// callers will usually want to remove them beforehand.
func (otf *Font) DecodeFont(chars []rune) DecodedFont {
	df := DecodedFont{
		Glyphs: make(map[rune]SimpleGlyph, len(chars)),
		Failed: make(map[rune]error),
	}
	for _, r := range chars {
		gid, err := otf.GlyphIndex(r)
		if err != nil {
			df.Failed[r] = CharError{Char: r, Err: err}
			continue
		}
		if otf.locations.IsEmpty(gid) {
			tracer().Debugf("character %q maps to glyph %d without outline", r, gid)
			continue
		}
		g, err := otf.DecodeGlyph(gid)
		if err != nil {
			tracer().Infof("cannot decode character %q: %v", r, err)
			df.Failed[r] = CharError{Char: r, Err: err}
			continue
		}
		if g.IsEmpty() {
			continue
		}
		df.Glyphs[r] = g
	}
	return df
}

// Chars returns the characters with an outline, in ascending order.
func (df DecodedFont) Chars() []rune {
	chars := make([]rune, 0, len(df.Glyphs))
	for r := range df.Glyphs {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Err returns the errors of all failed characters joined into one, or nil.
func (df DecodedFont) Err() error {
	if len(df.Failed) == 0 {
		return nil
	}
	chars := make([]rune, 0, len(df.Failed))
	for r := range df.Failed {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	errs := make([]error, len(chars))
	for i, r := range chars {
		errs[i] = df.Failed[r]
	}
	return errors.Join(errs...)
}

// MarshalJSON encodes the outlines as an object keyed by character:
//
//	{"glyphs":{"A":{"xMin":…,"contours":[{"points":[{"x":…,"y":…,"onCurve":true},…]}]}}}
func (df DecodedFont) MarshalJSON() ([]byte, error) {
	glyphs := make(map[string]SimpleGlyph, len(df.Glyphs))
	for r, g := range df.Glyphs {
		glyphs[string(r)] = g
	}
	return json.Marshal(struct {
		Glyphs map[string]SimpleGlyph `json:"glyphs"`
	}{glyphs})
}

// --- Functions on raw font data --------------------------------------------

// ResolveGlyphID maps a character to a glyph index for the font in font.
// Clients looking up more than one character should Parse the font once and use
// Font.GlyphIndex.
func ResolveGlyphID(font []byte, r rune) (GlyphIndex, error) {
	otf, err := Parse(font)
	if err != nil {
		return NotDef, err
	}
	return otf.GlyphIndex(r)
}

// DecodeGlyphAt decodes the outline of glyph gid of the font in font.
func DecodeGlyphAt(font []byte, gid GlyphIndex) (SimpleGlyph, error) {
	otf, err := Parse(font)
	if err != nil {
		return SimpleGlyph{}, err
	}
	return otf.DecodeGlyph(gid)
}

// DecodeFontBytes decodes the outlines for a set of characters of the font in font.
// An error is returned if the font cannot be parsed; errors for single characters
// are reported in DecodedFont.Failed.
func DecodeFontBytes(font []byte, chars []rune) (DecodedFont, error) {
	otf, err := Parse(font)
	if err != nil {
		return DecodedFont{}, err
	}
	return otf.DecodeFont(chars), nil
}
