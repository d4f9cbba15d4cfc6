package gui

import (
	"testing"

	"shareview/internal/errors"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryIcon(t *testing.T) {
	assert.Equal(t, theme.FolderIcon(), entryIcon(types.Folder))
	assert.Equal(t, theme.FileVideoIcon(), entryIcon(types.Video))
	assert.Equal(t, theme.FileTextIcon(), entryIcon(types.Document))
	assert.Equal(t, theme.FileImageIcon(), entryIcon(types.Image))
	assert.Equal(t, theme.FileIcon(), entryIcon(types.Ignored))
}

func TestConnectFailureText(t *testing.T) {
	uri := "smb://192.168.1.10/media"

	msg := connectFailureText(errors.New("gone", errors.MountHelperMissing), uri)
	assert.Contains(t, msg, "gio")

	msg = connectFailureText(errors.New("slow", errors.MountTimeout), uri)
	assert.Contains(t, msg, "timed out")

	msg = connectFailureText(errors.New("other", errors.Unknown), uri)
	assert.Contains(t, msg, uri)
}

func TestTextSegmentsHighlightMatches(t *testing.T) {
	w := &textWindow{content: "a dog and a DOG", term: "dog"}

	segs := w.segments()
	assert.Len(t, segs, 4)

	var rebuilt string
	bold := 0
	for _, s := range segs {
		ts := s.(*widget.TextSegment)
		rebuilt += ts.Text
		if ts.Style.TextStyle.Bold {
			bold++
		}
	}
	assert.Equal(t, w.content, rebuilt)
	assert.Equal(t, 2, bold)
}

func TestTextSegmentsNoTerm(t *testing.T) {
	w := &textWindow{content: "plain content"}

	segs := w.segments()
	assert.Len(t, segs, 1)
	assert.Equal(t, "plain content", segs[0].(*widget.TextSegment).Text)
}

func TestActivationStatus(t *testing.T) {
	tests := []struct {
		name  string
		entry types.Entry
		want  string
	}{
		{"video", types.Entry{Name: "clip.mp4", Kind: types.Video, Ext: "MP4"}, "Playing: clip.mp4"},
		{"pdf", types.Entry{Name: "notes.pdf", Kind: types.Document, Ext: "PDF"}, "Viewing PDF: notes.pdf"},
		{"txt", types.Entry{Name: "notes.txt", Kind: types.Document, Ext: "TXT"}, "Viewing TXT: notes.txt"},
		{"image", types.Entry{Name: "pic.png", Kind: types.Image, Ext: "PNG"}, "Viewing image: pic.png"},
		{"folder", types.Entry{Name: "Movies", Kind: types.Folder}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activationStatus(tt.entry))
		})
	}
}

func TestNoteActivationUpdatesStatusLine(t *testing.T) {
	a := &App{statusLabel: widget.NewLabel("1 folders | 1 videos | 0 documents")}

	a.noteActivation(types.Entry{Name: "clip.mp4", Kind: types.Video, Ext: "MP4"})
	assert.Equal(t, "Playing: clip.mp4", a.statusLabel.Text)

	// Folders navigate; the counts summary owns the line
	a.statusLabel.SetText("summary")
	a.noteActivation(types.Entry{Name: "Movies", Kind: types.Folder})
	assert.Equal(t, "summary", a.statusLabel.Text)
}

// TestEntryRowLayout pins the row shape the list update callback indexes
// into; reordering the template breaks the type assertions there.
func TestEntryRowLayout(t *testing.T) {
	test.NewApp()

	row := container.NewHBox(
		widget.NewIcon(theme.FolderIcon()),
		widget.NewLabel("Template entry name"),
		layout.NewSpacer(),
		widget.NewLabel("Type"),
		widget.NewLabel("Size"),
	)
	w := test.NewTempWindow(t, row)
	defer w.Close()

	rendered, ok := w.Content().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, rendered.Objects, 5)

	_, ok = rendered.Objects[0].(*widget.Icon)
	assert.True(t, ok)
	_, ok = rendered.Objects[1].(*widget.Label)
	assert.True(t, ok)
	_, ok = rendered.Objects[3].(*widget.Label)
	assert.True(t, ok)
	_, ok = rendered.Objects[4].(*widget.Label)
	assert.True(t, ok)
}
