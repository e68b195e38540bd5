package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rhamzthev/rich-text/internal/fontload"
	"github.com/rhamzthev/rich-text/ot"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for TrueType glyph outline decoding and font diagnostics.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("font").
		SetDescription("Print diagnostics and table information for a TrueType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "TrueType font file path", "").
		AddArgument("tables...", "optional list of table tags (e.g. cmap,glyf,head)", "").
		AddFlag("lenient,L", "substitute offset 0 for missing tables", commando.Bool, nil).
		AddFlag("segments,s", "print the cmap format 4 segments", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.
		Register("gid").
		SetDescription("Map characters to glyph indices using the font's cmap table.").
		SetShortDescription("character to glyph mapping").
		AddArgument("font", "TrueType font file path", "").
		AddArgument("text...", "text to map (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+00E4)", commando.String, "-").
		AddFlag("lenient,L", "substitute offset 0 for missing tables", commando.Bool, nil).
		SetAction(runGidCommand)

	commando.
		Register("decode").
		SetDescription("Decode glyph outlines for the distinct characters of a text and print them as JSON.").
		SetShortDescription("decode outlines to JSON").
		AddArgument("font", "TrueType font file path", "").
		AddArgument("text...", "text to decode (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+00E4)", commando.String, "-").
		AddFlag("output,o", "output file ('-' for stdout)", commando.String, "-").
		AddFlag("pretty,p", "indent JSON output", commando.Bool, nil).
		AddFlag("strict,S", "exit with an error if any character fails to decode", commando.Bool, nil).
		AddFlag("lenient,L", "substitute offset 0 for missing tables", commando.Bool, nil).
		AddFlag("max-size", "maximum font file size in bytes", commando.Int, fontload.MaxFontSize).
		SetAction(runDecodeCommand)

	commando.Parse(nil)
}

func parseInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		runes, err := parseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	return textArg.Value, nil
}

func parseCodepoints(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10ffff {
		return 0, fmt.Errorf("codepoint %q beyond Unicode range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustLoadFont(path string, flags map[string]commando.FlagValue) *fontload.ScalableFont {
	opts := []fontload.Option{}
	if mustFlagBool(flags["lenient"], "lenient") {
		opts = append(opts, fontload.WithParseOptions(ot.SubstituteMissingTables))
	}
	if flag, ok := flags["max-size"]; ok {
		opts = append(opts, fontload.WithMaxSize(int64(mustFlagInt(flag, "max-size"))))
	}
	f, err := fontload.LoadOpenTypeFont(path, opts...)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
