// Package viewer holds the state machines behind the embedded viewers.
// Transitions are pure functions over small value types; rendering is a
// separate side effect driven by the UI layer, so every transition here
// is unit-testable without a display.
package viewer

import "strconv"

// Document viewer zoom bounds and step.
const (
	DocZoomMin  = 0.4
	DocZoomMax  = 3.0
	DocZoomStep = 0.2
)

// DocumentView is the paging and zoom state of one open document.
// The page count is fixed when the document opens.
type DocumentView struct {
	page  int
	total int
	zoom  float64
}

// NewDocumentView creates the state for a document with totalPages pages,
// positioned on page 1 at 100% zoom.
func NewDocumentView(totalPages int) DocumentView {
	if totalPages < 1 {
		totalPages = 1
	}
	return DocumentView{page: 1, total: totalPages, zoom: 1.0}
}

// Page returns the 1-based current page.
func (v DocumentView) Page() int {
	return v.page
}

// TotalPages returns the fixed page count.
func (v DocumentView) TotalPages() int {
	return v.total
}

// Zoom returns the current zoom factor.
func (v DocumentView) Zoom() float64 {
	return v.zoom
}

// NextPage advances one page; a no-op on the last page.
func (v DocumentView) NextPage() DocumentView {
	if v.page < v.total {
		v.page++
	}
	return v
}

// PrevPage goes back one page; a no-op on the first page.
func (v DocumentView) PrevPage() DocumentView {
	if v.page > 1 {
		v.page--
	}
	return v
}

// GoToPage jumps to the page named by input. Non-numeric input and pages
// outside [1, total] are silently ignored.
func (v DocumentView) GoToPage(input string) DocumentView {
	page, err := strconv.Atoi(input)
	if err != nil {
		return v
	}
	if page < 1 || page > v.total {
		return v
	}
	v.page = page
	return v
}

// ZoomIn increases zoom one step, saturating at DocZoomMax.
func (v DocumentView) ZoomIn() DocumentView {
	v.zoom = minFloat(v.zoom+DocZoomStep, DocZoomMax)
	return v
}

// ZoomOut decreases zoom one step, saturating at DocZoomMin.
func (v DocumentView) ZoomOut() DocumentView {
	v.zoom = maxFloat(v.zoom-DocZoomStep, DocZoomMin)
	return v
}

// ZoomReset returns zoom to 100%.
func (v DocumentView) ZoomReset() DocumentView {
	v.zoom = 1.0
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
