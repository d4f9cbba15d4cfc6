package viewer

import (
	"image"

	"github.com/gen2brain/go-fitz"

	"shareview/internal/errors"
)

// Rasterization baseline; a zoom factor of 1.0 renders at this density.
const pdfBaseDPI = 96

// PageSource is a multi-page raster source for the document viewer.
type PageSource interface {
	// PageCount returns the number of pages, at least 1.
	PageCount() int
	// RenderPage rasterizes the 1-based page at the given zoom factor.
	RenderPage(page int, zoom float64) (image.Image, error)
	// Close releases the underlying document.
	Close() error
}

// PDFSource rasterizes PDF pages through MuPDF.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

// OpenPDF opens a PDF for page-at-a-time rendering. Unparseable files
// yield a RenderFailed error so the UI can refuse to open the viewer.
func OpenPDF(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, errors.NewPathError("failed to open PDF", path, errors.RenderFailed, err)
	}
	if doc.NumPage() < 1 {
		_ = doc.Close()
		return nil, errors.NewPathError("PDF has no pages", path, errors.RenderFailed, nil)
	}
	return &PDFSource{doc: doc, path: path}, nil
}

// PageCount returns the number of pages in the document.
func (s *PDFSource) PageCount() int {
	return s.doc.NumPage()
}

// RenderPage rasterizes one page. MuPDF pages are 0-based internally;
// callers pass the 1-based page the view state tracks.
func (s *PDFSource) RenderPage(page int, zoom float64) (image.Image, error) {
	if page < 1 || page > s.doc.NumPage() {
		return nil, errors.Newf(errors.RenderFailed, "page %d out of range for %s", page, s.path)
	}
	img, err := s.doc.ImageDPI(page-1, pdfBaseDPI*zoom)
	if err != nil {
		return nil, errors.NewPathError("failed to render PDF page", s.path, errors.RenderFailed, err)
	}
	return img, nil
}

// Close releases the document.
func (s *PDFSource) Close() error {
	return s.doc.Close()
}
