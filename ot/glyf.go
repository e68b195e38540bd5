package ot

import (
	"fmt"
)

// Point is a point of a glyph outline, in font design units.
// On-curve points lie on the outline, off-curve points are control points of
// quadratic Bézier curves.
type Point struct {
	X       int16 `json:"x"`
	Y       int16 `json:"y"`
	OnCurve bool  `json:"onCurve"`
}

// Contour is a closed sequence of points. The order of the points defines
// the winding of the path.
type Contour struct {
	Points []Point `json:"points"`
}

// SimpleGlyph is the outline of a glyph made of contours.
//
// The bounding box is copied from the glyph header as found; it is not
// re-calculated from the points.
type SimpleGlyph struct {
	XMin     int16     `json:"xMin"`
	YMin     int16     `json:"yMin"`
	XMax     int16     `json:"xMax"`
	YMax     int16     `json:"yMax"`
	Contours []Contour `json:"contours"`
}

// IsEmpty reports whether the glyph has no contours.
func (g SimpleGlyph) IsEmpty() bool {
	return len(g.Contours) == 0
}

// NumPoints returns the number of points over all contours.
func (g SimpleGlyph) NumPoints() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c.Points)
	}
	return n
}

// Layout of a glyph description in table 'glyf'.
// https://learn.microsoft.com/en-us/typography/opentype/spec/glyf#glyph-headers
const (
	glyphHeaderSize = 10 // numberOfContours, xMin, yMin, xMax, yMax
)

// pointFlag is a flag of the flags array of a simple glyph description.
type pointFlag uint8

const (
	// If set, the point is on the curve; otherwise, it is off the curve.
	flagOnCurve pointFlag = 1 << iota

	// If set, the x-coordinate is 1 byte long, with bit 4 giving its sign.
	// If not set, the x-coordinate is 2 bytes long, unless bit 4 is set.
	flagXShortVector

	// Same as flagXShortVector, for the y-coordinate.
	flagYShortVector

	// If set, the next byte specifies the number of additional times this flag
	// byte is to be repeated.
	flagRepeat

	// With flagXShortVector set: the sign of the x-coordinate (1 = positive).
	// Without: if set, the x-coordinate is the same as the previous one.
	flagXIsSameOrPositive

	// Same as flagXIsSameOrPositive, for the y-coordinate.
	flagYIsSameOrPositive
)

func (f pointFlag) is(mask pointFlag) bool {
	return f&mask != 0
}

// DecodeGlyph decodes the outline of a glyph.
//
// Glyphs without outline data (e.g., 'space') and composite glyphs result
// in an empty outline. A glyph index beyond the number of glyphs is an error.
func (otf *Font) DecodeGlyph(gid GlyphIndex) (SimpleGlyph, error) {
	start, end, err := otf.locations.Range(gid)
	if err != nil {
		return SimpleGlyph{}, err
	}
	if start == end {
		return SimpleGlyph{}, nil
	}
	g, err := decodeSimpleGlyph(otf.binary, otf.glyf+int(start))
	if err != nil {
		return SimpleGlyph{}, fmt.Errorf("glyph %d: %w", gid, err)
	}
	return g, nil
}

// decodeSimpleGlyph decodes the glyph description starting at offset at.
//
// Coordinates are stored as deltas to the previous point; the first point of
// the glyph is relative to (0,0). Accumulation runs over all contours.
func decodeSimpleGlyph(b binarySegm, at int) (SimpleGlyph, error) {
	c := cursor{data: b, pos: at}
	numberOfContours := c.i16()
	g := SimpleGlyph{
		XMin: c.i16(),
		YMin: c.i16(),
		XMax: c.i16(),
		YMax: c.i16(),
	}
	if err := c.err(); err != nil {
		return SimpleGlyph{}, fontError(TagGlyf, "Header", SeverityMajor, at, err)
	}
	if numberOfContours < 0 {
		tracer().Debugf("glyph at %d is a composite glyph, not decoded", at)
		return SimpleGlyph{}, nil
	}
	if numberOfContours == 0 {
		return g, nil
	}
	endPoints := make([]int, numberOfContours)
	for i := range endPoints {
		endPoints[i] = int(c.u16())
		if i > 0 && endPoints[i] < endPoints[i-1] && c.err() == nil {
			return SimpleGlyph{}, fontError(TagGlyf, "EndPtsOfContours", SeverityMajor, at,
				fmt.Errorf("%w: end point %d of contour %d precedes %d",
					ErrMalformedGlyph, endPoints[i], i, endPoints[i-1]))
		}
	}
	instructionLength := c.u16()
	c.skip(int(instructionLength))
	if err := c.err(); err != nil {
		return SimpleGlyph{}, fontError(TagGlyf, "Instructions", SeverityMajor, at, err)
	}
	numPoints := endPoints[len(endPoints)-1] + 1
	flags := decodeFlags(&c, numPoints)
	if err := c.err(); err != nil {
		return SimpleGlyph{}, fontError(TagGlyf, "Flags", SeverityMajor, at, err)
	}
	points := make([]Point, numPoints)
	var x, y int16
	for i, f := range flags {
		x += coordinateDelta(&c, f, flagXShortVector, flagXIsSameOrPositive)
		points[i].X = x
		points[i].OnCurve = f.is(flagOnCurve)
	}
	for i, f := range flags {
		y += coordinateDelta(&c, f, flagYShortVector, flagYIsSameOrPositive)
		points[i].Y = y
	}
	if err := c.err(); err != nil {
		return SimpleGlyph{}, fontError(TagGlyf, "Coordinates", SeverityMajor, at, err)
	}
	g.Contours = make([]Contour, len(endPoints))
	first := 0
	for i, last := range endPoints {
		g.Contours[i].Points = points[first : last+1 : last+1]
		first = last + 1
	}
	return g, nil
}

// decodeFlags reads flags until there is one for each of n points. A flag
// with flagRepeat set is followed by a count of additional repetitions.
func decodeFlags(c *cursor, n int) []pointFlag {
	flags := make([]pointFlag, 0, n)
	for len(flags) < n && c.err() == nil {
		f := pointFlag(c.u8())
		flags = append(flags, f)
		if !f.is(flagRepeat) {
			continue
		}
		repeat := int(c.u8())
		for ; repeat > 0 && len(flags) < n; repeat-- {
			flags = append(flags, f)
		}
	}
	return flags
}

// coordinateDelta reads the delta of one coordinate, as described by the
// point's flag f: a short vector is one unsigned byte with the sign given by
// sameOrPositive, a long vector is an int16 unless sameOrPositive denotes a
// repeated coordinate.
func coordinateDelta(c *cursor, f, short, sameOrPositive pointFlag) int16 {
	switch {
	case f.is(short):
		d := int16(c.u8())
		if !f.is(sameOrPositive) {
			d = -d
		}
		return d
	case f.is(sameOrPositive):
		return 0
	}
	return c.i16()
}
