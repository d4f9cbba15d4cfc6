package viewer_test

import (
	"os"
	"path/filepath"
	"testing"

	"shareview/internal/errors"
	"shareview/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFontBounds(t *testing.T) {
	v := viewer.NewTextView()
	assert.Equal(t, viewer.TextFontDefault, v.FontSize())
	assert.True(t, v.Wrap())

	for i := 0; i < 40; i++ {
		v = v.IncreaseFont()
	}
	assert.Equal(t, viewer.TextFontMax, v.FontSize())

	for i := 0; i < 40; i++ {
		v = v.DecreaseFont()
	}
	assert.Equal(t, viewer.TextFontMin, v.FontSize())

	assert.False(t, v.ToggleWrap().Wrap())
	assert.True(t, v.ToggleWrap().ToggleWrap().Wrap())
}

func TestLoadTextUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo wörld\n"), 0644))

	content, err := viewer.LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld\n", content)
}

func TestLoadTextLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 but invalid as a standalone UTF-8 byte
	path := filepath.Join(t.TempDir(), "legacy.txt")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0644))

	content, err := viewer.LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, "café", content)
}

func TestLoadTextMissing(t *testing.T) {
	_, err := viewer.LoadText(filepath.Join(t.TempDir(), "gone.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSearchText(t *testing.T) {
	content := "The DOG chased the dog around the doghouse"

	offsets := viewer.SearchText(content, "dog")
	assert.Equal(t, []int{4, 19, 34}, offsets)

	assert.Nil(t, viewer.SearchText(content, "cat"))
	assert.Nil(t, viewer.SearchText(content, ""))
}
