package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	richtext "github.com/rhamzthev/rich-text"
	"github.com/rhamzthev/rich-text/ot"
	"github.com/thatisuday/commando"
)

func runGidCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath, flags)
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if err := printGlyphIndices(os.Stdout, f.OT, input); err != nil {
		fatalf("%v", err)
	}
}

// printGlyphIndices prints one line per character of text, in text order.
func printGlyphIndices(w io.Writer, otf *ot.Font, text string) error {
	for _, r := range text {
		gid, err := otf.GlyphIndex(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%#U\t%d\n", r, gid)
	}
	return nil
}

func runDecodeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath, flags)
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	outlines := richtext.Outlines(f.OT, input)
	for _, r := range richtext.Characters(input) {
		if e, failed := outlines.Failed[r]; failed {
			tracer().Errorf("%v", e)
		}
	}
	out := io.Writer(os.Stdout)
	if path := mustFlagString(flags["output"], "output"); path != "" && path != "-" {
		file, err := os.Create(path)
		if err != nil {
			fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := writeOutlines(out, outlines, mustFlagBool(flags["pretty"], "pretty")); err != nil {
		fatalf("cannot write outlines: %v", err)
	}
	if mustFlagBool(flags["strict"], "strict") && len(outlines.Failed) > 0 {
		fatalf("%d characters failed to decode", len(outlines.Failed))
	}
}

func writeOutlines(w io.Writer, outlines ot.DecodedFont, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(outlines)
}
