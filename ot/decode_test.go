package ot

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	df := otf.DecodeFont([]rune("A B CDz"))
	// space and 'z' have no outline, 'C' is a composite glyph
	assert.Equal(t, []rune{'A', 'B'}, df.Chars())
	require.Len(t, df.Failed, 1)
	err, ok := df.Failed['D']
	require.True(t, ok, "expected 'D' to fail")
	assert.True(t, errors.Is(err, ErrMalformedGlyph))
	var charErr CharError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, 'D', charErr.Char)
	assert.True(t, errors.Is(df.Err(), ErrMalformedGlyph))

	a, err := otf.DecodeGlyph(gidTriangle)
	require.NoError(t, err)
	if diff := cmp.Diff(a, df.Glyphs['A']); diff != "" {
		t.Errorf("outline of 'A' differs from glyph %d (-want +got):\n%s", gidTriangle, diff)
	}
	for _, g := range df.Glyphs {
		assert.False(t, g.IsEmpty(), "expected no empty outlines in result")
	}
}

func TestDecodeFontWithoutFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	df, err := DecodeFontBytes(standardTestFont().build(), []rune("AABB"))
	require.NoError(t, err)
	assert.Len(t, df.Glyphs, 2)
	assert.Empty(t, df.Failed)
	assert.NoError(t, df.Err())

	df, err = DecodeFontBytes(standardTestFont().build(), nil)
	require.NoError(t, err)
	assert.Empty(t, df.Glyphs)

	_, err = DecodeFontBytes([]byte("not a font"), []rune("A"))
	assert.True(t, errors.Is(err, ErrFontType), "expected parse error, got %v", err)
}

func TestDecodeFontJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	data, err := json.Marshal(otf.DecodeFont([]rune("A")))
	require.NoError(t, err)
	expected := `{"glyphs":{"A":{"xMin":10,"yMin":0,"xMax":18,"yMax":0,"contours":[{"points":[` +
		`{"x":10,"y":0,"onCurve":true},{"x":15,"y":0,"onCurve":true},{"x":18,"y":0,"onCurve":true}]}]}}}`
	assert.JSONEq(t, expected, string(data))
}

func TestDecodeFontConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, standardTestFont())
	reference := otf.DecodeFont([]rune("ABCD"))
	var wg sync.WaitGroup
	results := make([]DecodedFont, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = otf.DecodeFont([]rune("ABCD"))
		}(i)
	}
	wg.Wait()
	for i, df := range results {
		if diff := cmp.Diff(reference.Glyphs, df.Glyphs); diff != "" {
			t.Errorf("result %d differs (-want +got):\n%s", i, diff)
		}
		assert.Len(t, df.Failed, 1, "result %d", i)
	}
}

func TestDecodeMissingTableLenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tf := standardTestFont()
	tf.omit = []string{"glyf"}
	otf, err := Parse(tf.build(), SubstituteMissingTables)
	require.NoError(t, err)
	// with glyf substituted by offset 0, glyph data is read from the font header;
	// the result is garbage, but decoding must not panic
	assert.NotPanics(t, func() { otf.DecodeFont([]rune("ABCD")) })
}
