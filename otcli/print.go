package main

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	richtext "github.com/rhamzthev/rich-text"
	"github.com/rhamzthev/rich-text/otquery"
	"golang.org/x/text/unicode/runenames"
)

func gidOp(intp *Intp, op *Op) (err error, stop bool) {
	var r rune
	if r, err = intp.charArg(op); err != nil {
		return
	}
	gid, err := intp.font.GlyphIndex(r)
	if err != nil {
		return
	}
	pterm.Printf("%s => glyph %d\n", charName(r), gid)
	return
}

// charName formats a character with its Unicode name, e.g.
// "U+00E4 'ä' LATIN SMALL LETTER A WITH DIAERESIS".
func charName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return fmt.Sprintf("%#U %s", r, name)
	}
	return fmt.Sprintf("%#U", r)
}

func glyphOp(intp *Intp, op *Op) (err error, stop bool) {
	var r rune
	if r, err = intp.charArg(op); err != nil {
		return
	}
	gid, err := intp.font.GlyphIndex(r)
	if err != nil {
		return
	}
	g, err := intp.font.DecodeGlyph(gid)
	if err != nil {
		return
	}
	stats := otquery.OutlineStats(g)
	pterm.Printf("%s => glyph %d, %d contours, %d points (%d off-curve)\n",
		charName(r), gid, stats.Contours, stats.Points, stats.OffCurve)
	if g.IsEmpty() {
		pterm.Info.Println("glyph has no outline (empty or composite)")
		return
	}
	data := [][]string{
		{"Contour", "Point", "X", "Y", "On"},
	}
	n := 0
	for i, c := range g.Contours {
		for _, p := range c.Points {
			on := ""
			if p.OnCurve {
				on = "●"
			}
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%d", n),
				fmt.Sprintf("%d", p.X),
				fmt.Sprintf("%d", p.Y),
				on,
			})
			n++
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func bboxOp(intp *Intp, op *Op) (err error, stop bool) {
	var r rune
	if r, err = intp.charArg(op); err != nil {
		return
	}
	bbox, err := otquery.GlyphBounds(intp.font, otquery.GlyphIndex(intp.font, r))
	if err != nil {
		return
	}
	pterm.Printf("%#U => %s, %d × %d\n", r, formatBBox(bbox), bbox.Dx(), bbox.Dy())
	return
}

func formatBBox(bbox otquery.BoundingBox) string {
	return fmt.Sprintf("(%d,%d)–(%d,%d)", bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
}

// decodeOp prints the outlines of all characters of op.arg as JSON. With
// format "pretty", the JSON is indented.
func decodeOp(intp *Intp, op *Op) (err error, stop bool) {
	if op.arg == "" {
		return ErrNoChar, false
	}
	outlines := richtext.Outlines(intp.font, op.arg)
	for r, e := range outlines.Failed {
		pterm.Error.Printf("%#U: %v\n", r, e)
	}
	var data []byte
	if op.format == "pretty" {
		data, err = json.MarshalIndent(outlines, "", "  ")
	} else {
		data, err = json.Marshal(outlines)
	}
	if err != nil {
		return
	}
	pterm.Println(string(data))
	return
}
