package ot

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this package wrap one of these, so clients
// may test for them with errors.Is.
var (
	// ErrBufferBounds is reported for any read beyond the end of the font binary.
	ErrBufferBounds = errors.New("buffer bounds violation")
	// ErrFontType is reported for binaries which do not start with a known sfnt version.
	ErrFontType = errors.New("font type not supported")
	// ErrMissingTable is reported if a table required for outline decoding is absent.
	ErrMissingTable = errors.New("missing required table")
	// ErrUnsupportedCMap is reported for character lookups in a font without a
	// format 4 cmap subtable.
	ErrUnsupportedCMap = errors.New("no supported cmap subtable")
	// ErrGlyphRange is reported for glyph indices not covered by the location table.
	ErrGlyphRange = errors.New("glyph index out of range")
	// ErrMalformedGlyph is reported for glyph descriptions which cannot be decoded.
	ErrMalformedGlyph = errors.New("malformed glyph description")
)

// ErrorSeverity represents the severity level of a font decoding error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates an error which makes parts of the font unusable, e.g. a single glyph.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during font decoding.
type FontError struct {
	Table    Tag           // The table where the error occurred (e.g., "cmap", "glyf")
	Section  string        // Specific section within the table (e.g., "Segments", "Flags")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
	Err      error         // Underlying cause, usually one of the sentinel errors
}

// Error implements the error interface.
func (e FontError) Error() string {
	issue := e.Issue
	if e.Err != nil {
		if issue == "" {
			issue = e.Err.Error()
		} else {
			issue = issue + ": " + e.Err.Error()
		}
	}
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, issue)
}

// Unwrap returns the underlying cause.
func (e FontError) Unwrap() error {
	return e.Err
}

// fontError produces an error located in a table.
func fontError(table Tag, section string, severity ErrorSeverity, offset int, err error) error {
	if offset < 0 {
		offset = 0
	}
	return FontError{
		Table:    table,
		Section:  section,
		Severity: severity,
		Offset:   uint32(offset),
		Err:      err,
	}
}

// CharError is the error for a single character of a DecodeFont request.
type CharError struct {
	Char rune
	Err  error
}

func (e CharError) Error() string {
	return fmt.Sprintf("character %q (U+%04X): %v", e.Char, e.Char, e.Err)
}

// Unwrap returns the underlying cause.
func (e CharError) Unwrap() error {
	return e.Err
}
