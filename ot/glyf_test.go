package ot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	g, err := otf.DecodeGlyph(gidTriangle)
	require.NoError(t, err)
	expected := SimpleGlyph{
		XMin: 10, YMin: 0, XMax: 18, YMax: 0,
		Contours: []Contour{{Points: []Point{
			{X: 10, Y: 0, OnCurve: true},
			{X: 15, Y: 0, OnCurve: true},
			{X: 18, Y: 0, OnCurve: true},
		}}},
	}
	if diff := cmp.Diff(expected, g); diff != "" {
		t.Errorf("triangle mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphTwoContours(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	g, err := otf.DecodeGlyph(gidTwoContours)
	require.NoError(t, err)
	// coordinates accumulate across contour boundaries
	expected := SimpleGlyph{
		XMin: -1, YMin: -2, XMax: 400, YMax: 300,
		Contours: []Contour{
			{Points: []Point{
				{X: 100, Y: 200, OnCurve: true},
				{X: 80, Y: 150, OnCurve: false},
			}},
			{Points: []Point{
				{X: 30, Y: 160, OnCurve: true},
				{X: 330, Y: 140, OnCurve: true},
				{X: 330, Y: 145, OnCurve: true},
			}},
		},
	}
	if diff := cmp.Diff(expected, g); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, g.NumPoints())
	// contours must not share capacity
	g.Contours[0].Points = append(g.Contours[0].Points, Point{})
	assert.Equal(t, int16(30), g.Contours[1].Points[0].X)
}

func TestGlyphDecodingIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := standardTestFont().build()
	otf := parseTestFont(t, standardTestFont())
	g1, err := otf.DecodeGlyph(gidTwoContours)
	require.NoError(t, err)
	g2, err := otf.DecodeGlyph(gidTwoContours)
	require.NoError(t, err)
	g3, err := DecodeGlyphAt(font, gidTwoContours)
	require.NoError(t, err)
	assert.True(t, cmp.Equal(g1, g2), "repeated decoding differs")
	assert.True(t, cmp.Equal(g1, g3), "decoding from raw bytes differs")
}

func TestGlyphLongLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	short := parseTestFont(t, standardTestFont())
	tf := standardTestFont()
	tf.locaFormat = locaFormatLong
	long := parseTestFont(t, tf)
	for gid := gidNotDef; gid < gidMalformed; gid++ {
		g1, err1 := short.DecodeGlyph(gid)
		g2, err2 := long.DecodeGlyph(gid)
		require.NoError(t, err1)
		require.NoError(t, err2)
		if diff := cmp.Diff(g1, g2); diff != "" {
			t.Errorf("glyph %d differs between loca formats (-short +long):\n%s", gid, diff)
		}
	}
}

func TestGlyphEmptyAndComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	for _, gid := range []GlyphIndex{gidNotDef, gidSpace, gidComposite} {
		g, err := otf.DecodeGlyph(gid)
		require.NoError(t, err, "glyph %d", gid)
		assert.True(t, g.IsEmpty(), "expected glyph %d to have no contours", gid)
		assert.Equal(t, SimpleGlyph{}, g, "expected zero outline for glyph %d", gid)
	}
}

func TestGlyphWithoutContours(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	g, err := decodeSimpleGlyph(binarySegm(be16(0, 1, 2, 3, 4)), 0)
	require.NoError(t, err)
	assert.Equal(t, SimpleGlyph{XMin: 1, YMin: 2, XMax: 3, YMax: 4}, g)
}

func TestGlyphMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	_, err := otf.DecodeGlyph(gidMalformed)
	assert.True(t, errors.Is(err, ErrMalformedGlyph), "expected malformed glyph, got %v", err)
	var fontErr FontError
	require.True(t, errors.As(err, &fontErr))
	assert.Equal(t, TagGlyf, fontErr.Table)
	assert.Equal(t, "EndPtsOfContours", fontErr.Section)

	_, err = otf.DecodeGlyph(GlyphIndex(otf.NumGlyphs()))
	assert.True(t, errors.Is(err, ErrGlyphRange), "expected glyph out of range, got %v", err)
}

func TestGlyphEmptyContour(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	glyph := simpleGlyph(
		[4]int16{1, 1, 4, 4},
		[]uint16{1, 1, 3},
		nil,
		[]byte{0x37, 0x37, 0x37, 0x37},
		[]byte{1, 1, 1, 1},
		[]byte{1, 1, 1, 1},
	)
	g, err := decodeSimpleGlyph(binarySegm(glyph), 0)
	require.NoError(t, err)
	expected := SimpleGlyph{
		XMin: 1, YMin: 1, XMax: 4, YMax: 4,
		Contours: []Contour{
			{Points: []Point{{X: 1, Y: 1, OnCurve: true}, {X: 2, Y: 2, OnCurve: true}}},
			{Points: []Point{}},
			{Points: []Point{{X: 3, Y: 3, OnCurve: true}, {X: 4, Y: 4, OnCurve: true}}},
		},
	}
	if diff := cmp.Diff(expected, g); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, g.NumPoints())
}

func TestGlyphTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, n := range []int{4, 11, 15, 17, len(triangle) - 1} {
		_, err := decodeSimpleGlyph(binarySegm(triangle[:n]), 0)
		assert.True(t, errors.Is(err, ErrBufferBounds),
			"expected glyph truncated to %d bytes to fail, got %v", n, err)
	}
}

func TestGlyphFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// a repeated flag occupies 1+r slots
	c := cursor{data: binarySegm{0x09, 3, 0x00}}
	flags := decodeFlags(&c, 5)
	require.NoError(t, c.err())
	assert.Equal(t, []pointFlag{0x09, 0x09, 0x09, 0x09, 0x00}, flags)
	assert.Equal(t, 3, c.pos)
	// repetitions beyond the number of points are dropped
	c = cursor{data: binarySegm{0x09, 10, 0x01}}
	flags = decodeFlags(&c, 3)
	require.NoError(t, c.err())
	assert.Len(t, flags, 3)
	assert.Equal(t, 2, c.pos)
	// missing repeat count
	c = cursor{data: binarySegm{0x09}}
	decodeFlags(&c, 3)
	assert.True(t, errors.Is(c.err(), ErrBufferBounds))
}

func TestCoordinateDelta(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, tc := range []struct {
		flag  pointFlag
		data  binarySegm
		delta int16
	}{
		{flagXShortVector | flagXIsSameOrPositive, binarySegm{200}, 200},
		{flagXShortVector, binarySegm{200}, -200},
		{flagXIsSameOrPositive, binarySegm{}, 0},
		{0, binarySegm{0x80, 0x00}, -32768},
		{0, binarySegm{0x01, 0x00}, 256},
	} {
		c := cursor{data: tc.data}
		d := coordinateDelta(&c, tc.flag, flagXShortVector, flagXIsSameOrPositive)
		require.NoError(t, c.err())
		assert.Equal(t, tc.delta, d, "flag %06b", tc.flag)
		assert.Equal(t, len(tc.data), c.pos, "flag %06b", tc.flag)
	}
}
