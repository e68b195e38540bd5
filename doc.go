/*
Package richtext decodes glyph outlines of TrueType fonts for the characters
of a text.

The heavy lifting is done by package ot, which resolves a font's table
directory, maps characters to glyphs by the font's cmap table and decodes
simple glyph descriptions from table glyf. This package is a thin facade for
the common case: take a font and a piece of text and return the outlines for
every distinct visible character.

	otf, err := richtext.LoadFont("Go-Regular.ttf")
	…
	outlines := richtext.Outlines(otf, "Hello World")
	for _, r := range outlines.Chars() {
	    glyph := outlines.Glyphs[r]
	    …
	}

Outlines are in font design units, with quadratic Bézier control points
marked as off-curve. Rasterization, hinting and composite glyphs are out of
scope.

# Links

TrueType glyph data:
https://learn.microsoft.com/en-us/typography/opentype/spec/glyf

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package richtext
