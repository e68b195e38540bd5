package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/rhamzthev/rich-text/internal/fontload"
	"github.com/rhamzthev/rich-text/ot"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tyse.fonts":    "Info",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "TrueType font file to load (default: Go Regular)")
	lenient := flag.Bool("lenient", false, "Substitute offset 0 for missing tables")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to Glyph Outline CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("glyf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	var opts []ot.ParseOption
	if *lenient {
		opts = append(opts, ot.SubstituteMissingTables)
	}
	if err := intp.loadFont(*fontname, opts...); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *ot.Font
	fontname string
	repl     *readline.Instance
	char     rune // last character inspected
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	if intp.char == 0 {
		return fmt.Sprintf("( font=%s )", intp.fontname)
	}
	return fmt.Sprintf("( font=%s ) -> %#U", intp.fontname, intp.char)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLES
	TABLE
	SEGMENTS
	GID
	GLYPH
	BBOX
	DECODE
	HEAD
	MAXP
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"tables":   TABLES,
	"table":    TABLE,
	"segments": SEGMENTS,
	"gid":      GID,
	"glyph":    GLYPH,
	"outline":  GLYPH,
	"bbox":     BBOX,
	"decode":   DECODE,
	"head":     HEAD,
	"maxp":     MAXP,
}

var opNames = []string{
	"quit",
	"help",
	"tables",
	"table",
	"segments",
	"gid",
	"glyph",
	"bbox",
	"decode",
	"head",
	"maxp",
}

// parseCommand splits a line into steps separated by blanks. Each step is an
// op-code, optionally followed by an argument and a format, separated by
// colons, e.g. "glyph:A" or "gid:U+00E4" or "decode:Hello:pretty".
func parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many commands in one line: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 3)
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TABLES:   tablesOp,
	TABLE:    tableOp,
	SEGMENTS: segmentsOp,
	GID:      gidOp,
	GLYPH:    glyphOp,
	BBOX:     bboxOp,
	DECODE:   decodeOp,
	HEAD:     headOp,
	MAXP:     maxpOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, opts ...ot.ParseOption) error {
	var f *fontload.ScalableFont
	var err error
	if fontname == "" {
		pterm.Info.Println("No font given, using Go Regular")
		f, err = fontload.ParseOpenTypeFont(goregular.TTF, fontload.WithParseOptions(opts...))
	} else {
		f, err = fontload.LoadOpenTypeFont(fontname, fontload.WithParseOptions(opts...))
	}
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.font, intp.fontname = f.OT, f.Fontname
	if intp.fontname == "" {
		intp.fontname = fontname
	}
	tracer().Infof("loaded font = %s", intp.fontname)
	pterm.Printf("font tables: %v\n", intp.font.TableTags())
	return nil
}

// ----------------------------------------------------------------------

var ErrNoChar = errors.New("command needs a character argument")

// parseChar interprets a command argument as a character. Accepted are a
// single character, "U+XXXX" and "0xXXXX".
func parseChar(arg string) (rune, error) {
	if arg == "" {
		return 0, ErrNoChar
	}
	if r, size := utf8.DecodeRuneInString(arg); size == len(arg) && r != utf8.RuneError {
		return r, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(arg), "U+"), "0X")
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, fmt.Errorf("not a character: %q", arg)
	}
	return rune(n), nil
}

func (intp *Intp) charArg(op *Op) (rune, error) {
	if op.arg == "" && intp.char != 0 {
		return intp.char, nil
	}
	r, err := parseChar(op.arg)
	if err == nil {
		intp.char = r
	}
	return r, err
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
