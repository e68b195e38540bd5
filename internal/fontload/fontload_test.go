package fontload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rhamzthev/rich-text/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	require.NotNil(t, f.OT)
	require.NotNil(t, f.SFNT)
	assert.Contains(t, f.Fontname, "Go")
	assert.Equal(t, f.SFNT.NumGlyphs(), f.OT.NumGlyphs())
}

func TestLoadFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	assert.Equal(t, len(goregular.TTF), len(f.Binary))

	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected missing file, got %v", err)
}

func TestSizeLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont(goregular.TTF, WithMaxSize(1024))
	assert.True(t, errors.Is(err, ErrFontTooLarge), "expected size limit to apply, got %v", err)

	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	_, err = LoadOpenTypeFont(path, WithMaxSize(1024))
	assert.True(t, errors.Is(err, ErrFontTooLarge), "expected size limit to apply, got %v", err)

	_, err = ParseOpenTypeFont(goregular.TTF, WithMaxSize(0))
	assert.NoError(t, err)
}

func TestNotAFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("definitely not a font"),
		WithParseOptions(ot.SubstituteMissingTables))
	assert.True(t, errors.Is(err, ot.ErrFontType), "expected font type error, got %v", err)
}
