package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"shareview/internal/errors"
	"shareview/internal/log"
	"shareview/pkg/types"
)

// SizeUnavailable is shown when an individual entry cannot be stat'ed.
// A stat failure degrades that entry, it never aborts the listing.
const SizeUnavailable = "N/A"

// Lister produces grouped, sorted listings of single directories.
type Lister struct {
	classifier *Classifier
}

// NewLister creates a Lister using the given classifier.
func NewLister(classifier *Classifier) *Lister {
	return &Lister{classifier: classifier}
}

// List reads the immediate children of path and returns them grouped
// folders first, then videos, documents and images, each group sorted by
// name ascending. Ignored entries are dropped. The listing is recomputed
// on every call; nothing is cached.
func (l *Lister) List(path string) (*types.Listing, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, listError(path, err)
	}

	var folders, videos, documents, images []types.Entry

	for _, de := range dirEntries {
		name := de.Name()
		if l.classifier.IsIgnored(name) {
			continue
		}

		fullPath := filepath.Join(path, name)

		if de.IsDir() {
			folders = append(folders, types.Entry{
				Name: name,
				Path: fullPath,
				Kind: types.Folder,
			})
			continue
		}
		if !de.Type().IsRegular() && de.Type()&os.ModeSymlink == 0 {
			continue
		}

		kind := l.classifier.Classify(name)
		if kind == types.Ignored {
			continue
		}

		entry := types.Entry{
			Name: name,
			Path: fullPath,
			Kind: kind,
			Ext:  Ext(name),
		}
		// Info uses the metadata ReadDir already fetched; a failure here
		// degrades the size column only.
		if info, infoErr := de.Info(); infoErr == nil {
			entry.SizeBytes = info.Size()
			entry.Size = FormatSize(info.Size())
		} else {
			log.Debugf("could not stat %s: %v", fullPath, infoErr)
			entry.SizeBytes = -1
			entry.Size = SizeUnavailable
		}

		switch kind {
		case types.Video:
			videos = append(videos, entry)
		case types.Document:
			documents = append(documents, entry)
		case types.Image:
			images = append(images, entry)
		}
	}

	for _, group := range [][]types.Entry{folders, videos, documents, images} {
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
	}

	listing := &types.Listing{
		Path:      path,
		Folders:   len(folders),
		Videos:    len(videos),
		Documents: len(documents),
		Images:    len(images),
	}
	listing.Entries = append(listing.Entries, folders...)
	listing.Entries = append(listing.Entries, videos...)
	listing.Entries = append(listing.Entries, documents...)
	listing.Entries = append(listing.Entries, images...)

	return listing, nil
}

// listError maps a ReadDir failure onto the error taxonomy the UI
// dispatches on.
func listError(path string, err error) error {
	switch {
	case os.IsPermission(err):
		return errors.NewPathError("permission denied", path, errors.AccessDenied, err)
	case os.IsNotExist(err):
		return errors.NewPathError("directory not found", path, errors.NotFound, err)
	default:
		return errors.NewPathError("error reading directory", path, errors.Unknown, err)
	}
}

// FormatSize renders a byte count using the smallest unit in which the
// scaled value is below 1024 (TB at most), with one fractional digit,
// e.g. 1536 -> "1.5 KB".
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", size)
}
