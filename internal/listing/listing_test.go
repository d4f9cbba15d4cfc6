package listing_test

import (
	"os"
	"path/filepath"
	"testing"

	"shareview/internal/config"
	"shareview/internal/errors"
	"shareview/internal/listing"
	"shareview/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLister(t *testing.T) *listing.Lister {
	t.Helper()
	c, err := listing.NewClassifier(config.NewTestConfig())
	require.NoError(t, err)
	return listing.NewLister(c)
}

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644))
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
		{1099511627776 * 2, "2.0 TB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, listing.FormatSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}

func TestListGroupOrdering(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0755))
	writeFile(t, dir, "z.mp4", 10)
	writeFile(t, dir, "y.mp4", 10)

	got, err := newLister(t).List(dir)
	require.NoError(t, err)

	names := make([]string, len(got.Entries))
	for i, e := range got.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"a", "b", "y.mp4", "z.mp4"}, names)
}

func TestListEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Movies"), 0755))
	writeFile(t, dir, "clip.MP4", 2048)
	writeFile(t, dir, "notes.pdf", 100)
	writeFile(t, dir, ".hidden", 1)

	got, err := newLister(t).List(dir)
	require.NoError(t, err)

	require.Len(t, got.Entries, 3)

	assert.Equal(t, "Movies", got.Entries[0].Name)
	assert.Equal(t, types.Folder, got.Entries[0].Kind)
	assert.Empty(t, got.Entries[0].Size)

	assert.Equal(t, "clip.MP4", got.Entries[1].Name)
	assert.Equal(t, types.Video, got.Entries[1].Kind)
	assert.Equal(t, "Video MP4", got.Entries[1].TypeLabel())
	assert.Equal(t, "2.0 KB", got.Entries[1].Size)

	assert.Equal(t, "notes.pdf", got.Entries[2].Name)
	assert.Equal(t, types.Document, got.Entries[2].Kind)
	assert.Equal(t, "Document PDF", got.Entries[2].TypeLabel())
	assert.NotEmpty(t, got.Entries[2].Size)

	assert.Equal(t, "1 folders | 1 videos | 1 documents", got.Summary())
}

func TestListSummaryIncludesImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.jpg", 10)

	got, err := newLister(t).List(dir)
	require.NoError(t, err)
	assert.Equal(t, "0 folders | 0 videos | 0 documents | 1 images", got.Summary())
}

func TestListIgnoresSystemEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "@eaDir"), 0755))
	writeFile(t, dir, "@tmp.mp4", 10)
	writeFile(t, dir, "keep.mp4", 10)

	got, err := newLister(t).List(dir)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "keep.mp4", got.Entries[0].Name)
}

func TestListUnrecognizedExtensionsDropped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.bin", 10)
	writeFile(t, dir, "clip.mov", 10)

	got, err := newLister(t).List(dir)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "clip.mov", got.Entries[0].Name)
}

func TestListNotFound(t *testing.T) {
	_, err := newLister(t).List(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	_, err := newLister(t).List(locked)
	require.Error(t, err)
	assert.True(t, errors.IsAccessDenied(err))
}
