package types

import "fmt"

// Kind classifies a directory entry by what the browser can do with it.
// It is a closed set; code that dispatches on Kind should handle every value.
type Kind int

const (
	// Ignored entries are hidden from listings (dotfiles, @-prefixed system
	// entries, and anything with an unrecognized extension).
	Ignored Kind = iota
	// Folder entries can be navigated into.
	Folder
	// Video entries are handed to an external player.
	Video
	// Document entries open in the embedded PDF or text viewer.
	Document
	// Image entries open in the embedded image viewer.
	Image
)

// String returns the display name used in the listing's type column.
func (k Kind) String() string {
	switch k {
	case Folder:
		return "Folder"
	case Video:
		return "Video"
	case Document:
		return "Document"
	case Image:
		return "Image"
	default:
		return "Ignored"
	}
}

// Entry is one visible row of a directory listing.
type Entry struct {
	Name      string
	Path      string
	Kind      Kind
	Ext       string // extension without the dot, upper-cased; empty for folders
	SizeBytes int64  // -1 when the entry could not be stat'ed
	Size      string // human-readable size; "N/A" on stat failure; empty for folders
}

// TypeLabel returns the listing's type column value, e.g. "Video MP4".
func (e Entry) TypeLabel() string {
	if e.Kind == Folder || e.Ext == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + " " + e.Ext
}

// Listing is the grouped, sorted result of reading one directory.
// Entries are ordered folders first, then videos, documents and images,
// each group sorted by name ascending.
type Listing struct {
	Path      string
	Entries   []Entry
	Folders   int
	Videos    int
	Documents int
	Images    int
}

// Summary renders the status-bar count line. The image segment is omitted
// when the directory holds no images.
func (l Listing) Summary() string {
	s := fmt.Sprintf("%d folders | %d videos | %d documents", l.Folders, l.Videos, l.Documents)
	if l.Images > 0 {
		s += fmt.Sprintf(" | %d images", l.Images)
	}
	return s
}
