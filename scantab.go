// Package scantab provides a fluent API for extracting a tabular dataset
// from a rasterized table on a scanned PDF page, and for exporting the
// result as CSV or as a single-slide PPTX presentation.
//
// Basic usage:
//
//	table, err := scantab.Open("scan.pdf").Table()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := scantab.Open("scan.pdf").
//	    Page(2).
//	    RowGap(25).
//	    DebugDir("out/debug").
//	    CSV("out/table.csv")
//
// The pipeline rasterizes the page at 300 DPI, rotates the image so the
// table edges are axis-aligned, erases the ruling lines, runs text
// detection, and clusters the detections into rows by vertical position.
// PDF rendering and OCR sit behind the "mupdf" and "ocr" build tags; both
// can also be injected, which is how pre-rendered page images and saved
// detection snapshots are processed without those dependencies. The
// lower-level imaging, tables, tabular, and pptx packages are available
// for advanced use.
package scantab

// Open prepares an Extractor for the document at the given path. The path
// may be a PDF or a pre-rendered page image (PNG, JPEG, TIFF); nothing is
// read from disk until a terminal operation like Table() runs.
//
// Example:
//
//	table, err := scantab.Open("scan.pdf").Table()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := scantab.Must(scantab.Open("scan.pdf").Table())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
