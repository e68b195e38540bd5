package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhamzthev/rich-text/internal/fontload"
	"github.com/rhamzthev/rich-text/ot"
	"github.com/rhamzthev/rich-text/otquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath, flags)
	printFontInfo(os.Stdout, f)
	if len(args["tables"].Value) > 0 {
		printSelectedTables(os.Stdout, f.OT, args["tables"].Value)
	}
	if mustFlagBool(flags["segments"], "segments") {
		if err := printSegments(os.Stdout, f.OT); err != nil {
			fatalf("%v", err)
		}
	}
}

func printFontInfo(w io.Writer, f *fontload.ScalableFont) {
	otf := f.OT
	fmt.Fprintf(w, "Path: %s\n", f.Filepath)
	fmt.Fprintf(w, "Type: %s\n", otquery.FontType(otf))
	if f.Fontname != "" {
		fmt.Fprintf(w, "Name: %s\n", f.Fontname)
	}
	tags := otf.TableTags()
	fmt.Fprintf(w, "Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Fprintf(w, " %s", tag.String())
	}
	fmt.Fprintln(w)
	if head, ok := otquery.HeadInfo(otf); ok {
		fmt.Fprintf(w, "UnitsPerEm: %d\n", head.UnitsPerEm)
		fmt.Fprintf(w, "BBox: (%d,%d)-(%d,%d)\n", head.BBox.MinX, head.BBox.MinY, head.BBox.MaxX, head.BBox.MaxY)
		format := "long"
		if head.IndexToLocFormat == 0 {
			format = "short"
		}
		fmt.Fprintf(w, "Loca: %s\n", format)
	}
	fmt.Fprintf(w, "Glyphs: %d\n", otf.NumGlyphs())
	if segs, err := otf.CMapSegments(); err == nil {
		fmt.Fprintf(w, "CMap: format 4, %d segments\n", len(segs))
	}
}

func printSelectedTables(w io.Writer, otf *ot.Font, raw string) {
	requested := splitCSVSpace(raw)
	for _, t := range requested {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		rec, ok := otf.Table(ot.T(tagName))
		if !ok {
			fmt.Fprintf(w, "table %s: missing\n", tagName)
			continue
		}
		fmt.Fprintf(w, "table %s: offset=%d size=%d checksum=%#08x\n", tagName, rec.Offset, rec.Length, rec.Checksum)
	}
}

func printSegments(w io.Writer, otf *ot.Font) error {
	segs, err := otf.CMapSegments()
	if err != nil {
		return err
	}
	for i, seg := range segs {
		fmt.Fprintf(w, "segment %4d: U+%04X..U+%04X delta=%d rangeOffset=%d\n",
			i, seg.Start, seg.End, int16(seg.Delta), seg.IDRangeOffset)
	}
	return nil
}
