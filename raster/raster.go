//go:build mupdf

// Package raster renders PDF pages to bitmaps for the extraction pipeline.
//
// This package wraps MuPDF via go-fitz. It requires cgo and the bundled
// MuPDF libraries, so it sits behind the "mupdf" build tag:
//
//	go build -tags mupdf
//
// Without the tag, a stub implementation is compiled in and Open returns
// ErrRasterNotEnabled.
package raster

import (
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
)

// Document is an open PDF ready for page rendering.
// It must be closed when no longer needed to release MuPDF resources.
type Document struct {
	doc *fitz.Document
}

// Open opens a PDF document at the given path.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{doc: doc}, nil
}

// Close releases rendering resources. It is safe to call on a nil Document.
func (d *Document) Close() error {
	if d == nil || d.doc == nil {
		return nil
	}
	err := d.doc.Close()
	d.doc = nil
	return err
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// RenderPage rasterizes the page with the given 0-based index at the given
// DPI and returns the bitmap.
func (d *Document) RenderPage(index, dpi int) (image.Image, error) {
	if index < 0 || index >= d.doc.NumPage() {
		return nil, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, index, d.doc.NumPage())
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	img, err := d.doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", index, err)
	}
	return img, nil
}
