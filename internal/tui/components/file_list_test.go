package components

import (
	"testing"

	"shareview/pkg/types"

	"github.com/alecthomas/assert"
)

func entries() []types.Entry {
	return []types.Entry{
		{Name: "Movies", Kind: types.Folder},
		{Name: "clip.mp4", Kind: types.Video, Ext: "MP4", Size: "1.5 KB"},
		{Name: "notes.pdf", Kind: types.Document, Ext: "PDF", Size: "2.0 KB"},
	}
}

func TestFileListCursorBounds(t *testing.T) {
	fl := NewFileList()
	fl.SetEntries(entries())

	fl.MoveCursor(-1)
	assert.Equal(t, 0, fl.Cursor())

	fl.MoveCursor(1)
	fl.MoveCursor(1)
	fl.MoveCursor(1)
	assert.Equal(t, 2, fl.Cursor())

	fl.End()
	assert.Equal(t, 2, fl.Cursor())
	fl.Home()
	assert.Equal(t, 0, fl.Cursor())
}

func TestFileListCurrent(t *testing.T) {
	fl := NewFileList()
	assert.True(t, fl.Current() == nil)

	fl.SetEntries(entries())
	assert.Equal(t, "Movies", fl.Current().Name)

	fl.MoveCursor(1)
	assert.Equal(t, "clip.mp4", fl.Current().Name)

	// Replacing the listing resets the cursor
	fl.SetEntries(entries()[:1])
	assert.Equal(t, 0, fl.Cursor())
}

func TestFileListViewShowsEntries(t *testing.T) {
	fl := NewFileList()
	fl.SetEntries(entries())

	view := fl.View()
	assert.Contains(t, view, "Movies")
	assert.Contains(t, view, "clip.mp4")
	assert.Contains(t, view, "Video MP4")

	empty := NewFileList()
	assert.Contains(t, empty.View(), "Empty directory")
}
