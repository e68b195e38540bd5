package fontload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rhamzthev/rich-text/ot"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// MaxFontSize is the default upper bound for the size of a font binary.
// Decoding has no notion of cancellation; the size cap is what keeps a single
// request bounded.
const MaxFontSize = 32 << 20

// ErrFontTooLarge is returned for font binaries exceeding the size cap.
var ErrFontTooLarge = errors.New("font binary exceeds size limit")

type options struct {
	maxSize   int64
	parseOpts []ot.ParseOption
}

// Option configures loading of a font.
type Option func(*options)

// WithMaxSize overrides MaxFontSize. Values ≤ 0 disable the size check.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithParseOptions passes options on to ot.Parse.
func WithParseOptions(opts ...ot.ParseOption) Option {
	return func(o *options) {
		o.parseOpts = append(o.parseOpts, opts...)
	}
}

func collect(opts []Option) options {
	o := options{maxSize: MaxFontSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ScalableFont is a parsed scalable font with its raw bytes, the outline
// decoder's view and, if the font is complete enough, an SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	OT       *ot.Font
	SFNT     *sfnt.Font // nil if x/image/font/sfnt rejects the font
}

// LoadOpenTypeFont loads a TrueType font from a file.
func LoadOpenTypeFont(fontfile string, opts ...Option) (*ScalableFont, error) {
	o := collect(opts)
	file, err := os.Open(fontfile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var r io.Reader = file
	if o.maxSize > 0 {
		r = io.LimitReader(file, o.maxSize+1)
	}
	bytez, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := parse(bytez, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads a TrueType font from memory.
func ParseOpenTypeFont(fbytes []byte, opts ...Option) (*ScalableFont, error) {
	return parse(fbytes, collect(opts))
}

func parse(fbytes []byte, o options) (f *ScalableFont, err error) {
	if o.maxSize > 0 && int64(len(fbytes)) > o.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFontTooLarge, o.maxSize)
	}
	f = &ScalableFont{Binary: fbytes}
	if f.OT, err = ot.Parse(fbytes, o.parseOpts...); err != nil {
		return nil, err
	}
	if f.SFNT, err = sfnt.Parse(fbytes); err != nil {
		tracer().Infof("font not accepted as SFNT, no font name available: %v", err)
		f.SFNT = nil
		return f, nil
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}
