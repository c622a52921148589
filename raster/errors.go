package raster

import "errors"

// DefaultDPI is the resolution pages are rendered at. 300 DPI keeps enough
// detail for the downstream text detector without ballooning bitmap sizes.
const DefaultDPI = 300

// ErrRasterNotEnabled is returned when rasterization functions are called
// but MuPDF support was not compiled in. Rebuild with -tags mupdf to enable
// PDF rendering.
var ErrRasterNotEnabled = errors.New("PDF rasterization not enabled; rebuild with -tags mupdf")

// ErrDocumentNotFound is returned when the source document cannot be opened.
var ErrDocumentNotFound = errors.New("document not found")

// ErrPageOutOfRange is returned when the requested page index is not a
// valid 0-based page of the document.
var ErrPageOutOfRange = errors.New("page index out of range")
