package components

import (
	"fmt"
	"os"
	"strings"

	"shareview/internal/tui/styles"
	"shareview/pkg/types"

	"github.com/dustin/go-humanize"
)

// FileList renders a directory listing with a movable cursor.
type FileList struct {
	entries []types.Entry
	cursor  int
	height  int
}

func NewFileList() *FileList {
	return &FileList{height: 20}
}

// SetEntries replaces the listing and puts the cursor back on top.
func (fl *FileList) SetEntries(entries []types.Entry) {
	fl.entries = entries
	fl.cursor = 0
}

// SetHeight bounds how many rows View renders.
func (fl *FileList) SetHeight(height int) {
	if height > 0 {
		fl.height = height
	}
}

// MoveCursor shifts the cursor by delta, staying inside the listing.
func (fl *FileList) MoveCursor(delta int) {
	next := fl.cursor + delta
	if next >= 0 && next < len(fl.entries) {
		fl.cursor = next
	}
}

// Home puts the cursor on the first entry.
func (fl *FileList) Home() {
	fl.cursor = 0
}

// End puts the cursor on the last entry.
func (fl *FileList) End() {
	if len(fl.entries) > 0 {
		fl.cursor = len(fl.entries) - 1
	}
}

// Cursor returns the cursor index.
func (fl *FileList) Cursor() int {
	return fl.cursor
}

// Current returns the entry under the cursor, or nil when empty.
func (fl *FileList) Current() *types.Entry {
	if fl.cursor >= 0 && fl.cursor < len(fl.entries) {
		return &fl.entries[fl.cursor]
	}
	return nil
}

// Entries returns the listing being rendered.
func (fl *FileList) Entries() []types.Entry {
	return fl.entries
}

func (fl *FileList) View() string {
	var s strings.Builder

	if len(fl.entries) == 0 {
		s.WriteString(styles.Detail.Render("Empty directory") + "\n")
		return s.String()
	}

	// Keep the cursor on screen by windowing the listing
	start := 0
	if fl.cursor >= fl.height {
		start = fl.cursor - fl.height + 1
	}
	end := start + fl.height
	if end > len(fl.entries) {
		end = len(fl.entries)
	}

	for i := start; i < end; i++ {
		entry := fl.entries[i]

		cursor := "  "
		if i == fl.cursor {
			cursor = styles.Cursor.Render("> ")
		}

		nameStyle := styles.File
		if entry.Kind == types.Folder {
			nameStyle = styles.Folder
		}

		details := fmt.Sprintf(" %-14s %9s", entry.TypeLabel(), entry.Size)
		if entry.Kind == types.Folder {
			details = fmt.Sprintf(" %-14s %9s", entry.TypeLabel(), "")
		}
		if info, err := os.Stat(entry.Path); err == nil {
			details += "  " + humanize.Time(info.ModTime())
		}

		s.WriteString(fmt.Sprintf("%s%-40s%s\n",
			cursor,
			nameStyle.Render(entry.Name),
			styles.Detail.Render(details)))
	}

	return s.String()
}
