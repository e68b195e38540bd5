package richtext

import (
	"unicode"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/rhamzthev/rich-text/internal/fontload"
	"github.com/rhamzthev/rich-text/ot"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// FromBinary parses raw TrueType bytes and returns a font ready for decoding.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte, opts ...ot.ParseOption) (*ot.Font, error) {
	return ot.Parse(data, opts...)
}

// LoadFont loads a TrueType font from a file. Files larger than
// fontload.MaxFontSize are rejected.
func LoadFont(path string) (*ot.Font, error) {
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded font %q from %s", f.Fontname, path)
	return f.OT, nil
}

// Characters returns the distinct characters of a text, in ascending order of
// their code points. The text is normalized to NFC first, so that a base
// character followed by a combining mark resolves to its precomposed form
// where one exists. White space is dropped, as it has no outline.
func Characters(text string) []rune {
	var set bitset.BitSet
	for _, r := range norm.NFC.String(text) {
		if unicode.IsSpace(r) {
			continue
		}
		set.Set(uint(r))
	}
	codepoints := set.AsSlice(make([]uint, set.Count()))
	chars := make([]rune, len(codepoints))
	for i, c := range codepoints {
		chars[i] = rune(c)
	}
	return chars
}

// Outlines decodes the outlines of the distinct characters of a text.
// Characters which fail to decode are reported in DecodedFont.Failed and do
// not affect the others.
func Outlines(otf *ot.Font, text string) ot.DecodedFont {
	chars := Characters(text)
	df := otf.DecodeFont(chars)
	if len(df.Failed) > 0 {
		tracer().Infof("%d of %d characters failed to decode", len(df.Failed), len(chars))
	}
	return df
}
