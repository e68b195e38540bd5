package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "glyph", "outline", "flags":
		pterm.Info.Println("Simple Glyph")
		pterm.Println(`
	A simple glyph description in table glyf starts with a header:
	+------------------+------+------+------+------+
	| numberOfContours | xMin | yMin | xMax | yMax |
	+------------------+------+------+------+------+
	followed by the end point index of every contour, the hinting
	instructions, one flag per point and the x- and y-coordinates.
	Coordinates are deltas to the previous point; flags tell whether
	a delta is 1 or 2 bytes long, or zero. Off-curve points are control
	points of quadratic Bézier curves.
	Composite glyphs (numberOfContours < 0) are not decoded.
	`)
	case "cmap", "segments", "gid":
		pterm.Info.Println("cmap format 4")
		pterm.Println(`
	Format 4 maps the Basic Multilingual Plane by segments:
	+-------+-----------+---------+---------------+
	| start | end       | idDelta | idRangeOffset |
	+-------+-----------+---------+---------------+
	For idRangeOffset = 0 the glyph is (c + idDelta) mod 65536.
	Otherwise idRangeOffset points into the glyph id array.
	The last segment ends at 0xFFFF.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	tables           list the tables of the font
	table:<tag>      show the table record for <tag>
	head, maxp       show header and profile information
	segments[:<n>]   list the cmap segments, or segment n
	gid:<c>          look up the glyph index for character c
	glyph:<c>        print the outline of character c (alias: outline)
	bbox:<c>         print the bounding box of character c
	decode:<text>    decode all characters of text to JSON
	help:<topic>     help on glyph or cmap
	quit             leave

	Characters may be given as themselves, as U+XXXX or as 0xXXXX.
	Several commands may be given on one line, separated by blanks.
	`)
	}
}
