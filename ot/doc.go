/*
Package ot decodes glyph outlines from TrueType font binaries.

Intended audience for this package are clients which need the raw quadratic
outlines of a handful of glyphs, e.g. for drawing text as vector paths, without
pulling in a full rasterizer. Package `ot` will

▪︎ resolve the font's table directory (tag ⇒ byte offset),

▪︎ read the glyph count ('maxp') and the glyph locations ('loca', in short or long format),

▪︎ map Unicode code points to glyph indices using a format 4 'cmap' subtable,

▪︎ decode simple glyphs from table 'glyf' into contours of on-curve and off-curve points.

Package `ot` will not rasterize, hint or otherwise interpret outlines. Composite glyphs
are recognized, but decoded as empty outlines. Character maps other than format 4 are
not supported.

All decoding is a function of the font's bytes. A parsed `Font` keeps the binary in memory
(it does not copy it) and caches the table directory and the location table. A `Font` is
never mutated after `Parse` returns, thus it may be shared between goroutines.

Malformed data is a hard error: every read is bounds-checked and a read beyond the
end of the binary reports `ErrBufferBounds` instead of producing plausible garbage.

# Status

Simple glyphs and cmap format 4 only. Variable fonts, font collections and CFF outlines
are not supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

/*
Useful references for the binary layout of the tables decoded here:

▪︎ https://learn.microsoft.com/en-us/typography/opentype/spec/otff

▪︎ https://learn.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values

▪︎ https://learn.microsoft.com/en-us/typography/opentype/spec/glyf

▪︎ https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6glyf.html
*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
