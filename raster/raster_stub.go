//go:build !mupdf

// Package raster renders PDF pages to bitmaps for the extraction pipeline.
//
// This is the stub implementation used when the "mupdf" build tag is not
// set. All functions return ErrRasterNotEnabled. To enable PDF rendering,
// rebuild with the "mupdf" build tag:
//
//	go build -tags mupdf
package raster

import "image"

// Document is a stub that returns errors for all operations.
type Document struct{}

// Open returns an error indicating rasterization support is not enabled.
// To enable it, rebuild with: go build -tags mupdf
func Open(path string) (*Document, error) {
	return nil, ErrRasterNotEnabled
}

// Close is a no-op for the stub document.
// It is safe to call on a nil document.
func (d *Document) Close() error {
	return nil
}

// PageCount returns 0 for the stub document.
func (d *Document) PageCount() int {
	return 0
}

// RenderPage returns an error indicating rasterization support is not enabled.
func (d *Document) RenderPage(index, dpi int) (image.Image, error) {
	return nil, ErrRasterNotEnabled
}
