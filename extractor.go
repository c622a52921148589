package scantab

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	// Image codecs for pre-rendered page input.
	_ "golang.org/x/image/tiff"
	_ "image/jpeg"

	"github.com/tsawler/scantab/format"
	"github.com/tsawler/scantab/imaging"
	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/ocr"
	"github.com/tsawler/scantab/pptx"
	"github.com/tsawler/scantab/raster"
	"github.com/tsawler/scantab/tables"
	"github.com/tsawler/scantab/tabular"
)

// Rasterizer renders document pages to bitmaps. The default implementation
// is the raster package; tests and callers with their own renderer can
// inject an alternative via WithRasterizer.
type Rasterizer interface {
	PageCount() int
	RenderPage(index, dpi int) (image.Image, error)
	Close() error
}

// TextDetector locates text on a bitmap. The default implementation is the
// ocr package; inject an alternative via WithDetector, for example to replay
// a saved detection snapshot.
type TextDetector interface {
	DetectText(img image.Image) ([]model.Detection, error)
}

// Extractor provides a fluent interface for extracting a table from one
// page of a scanned document. Each configuration method returns a new
// Extractor instance, making chains safe to share and reuse.
type Extractor struct {
	// Source
	filename string

	// Injected collaborators (optional)
	rasterizer Rasterizer
	detector   TextDetector

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		rasterizer: e.rasterizer,
		detector:   e.detector,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// Page selects the 0-based page index to extract from. Default is 0.
func (e *Extractor) Page(index int) *Extractor {
	newExt := e.clone()
	if index < 0 {
		newExt.err = fmt.Errorf("%w: %d", raster.ErrPageOutOfRange, index)
		return newExt
	}
	newExt.options.page = index
	return newExt
}

// DPI sets the render resolution for PDF input. Default is 300. The row gap
// and gridline kernel defaults are tuned for 300 DPI; adjust them together.
func (e *Extractor) DPI(dpi int) *Extractor {
	newExt := e.clone()
	if dpi <= 0 {
		newExt.err = fmt.Errorf("invalid DPI %d", dpi)
		return newExt
	}
	newExt.options.dpi = dpi
	return newExt
}

// RowGap sets the vertical jump in pixels that starts a new table row.
func (e *Extractor) RowGap(pixels float64) *Extractor {
	newExt := e.clone()
	newExt.options.rowGap = pixels
	return newExt
}

// KernelLength sets the minimum run length in pixels for a stroke to be
// treated as a ruling line and erased.
func (e *Extractor) KernelLength(pixels int) *Extractor {
	newExt := e.clone()
	newExt.options.kernelLength = pixels
	return newExt
}

// Region restricts table detection to a rectangular area of the page image,
// overriding the largest-contour heuristic.
func (e *Extractor) Region(x, y, width, height float64) *Extractor {
	newExt := e.clone()
	newExt.options.region = &regionOfInterest{x: x, y: y, width: width, height: height}
	return newExt
}

// Language sets the OCR language(s), e.g. "eng" or "eng+fra". Only applies
// to the default detector.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// SortDetections sorts detections top-to-bottom, left-to-right before row
// clustering, for detection engines whose output order is not a scan order.
func (e *Extractor) SortDetections() *Extractor {
	newExt := e.clone()
	newExt.options.sortDetections = true
	return newExt
}

// DebugDir enables dumps of the intermediate bitmaps (extract.png,
// deskew.png, striplines.png) into the given directory. Dumps already
// written are left in place when a later stage fails, for diagnosis.
func (e *Extractor) DebugDir(dir string) *Extractor {
	newExt := e.clone()
	newExt.options.debugDir = dir
	return newExt
}

// WithRasterizer injects a page renderer, replacing the default PDF
// rasterizer. The caller retains ownership and must close it.
func (e *Extractor) WithRasterizer(r Rasterizer) *Extractor {
	newExt := e.clone()
	newExt.rasterizer = r
	return newExt
}

// WithDetector injects a text detector, replacing the default OCR engine.
// The caller retains ownership of any resources it holds.
func (e *Extractor) WithDetector(d TextDetector) *Extractor {
	newExt := e.clone()
	newExt.detector = d
	return newExt
}

// Table runs the full pipeline and returns the reconstructed table.
func (e *Extractor) Table() (*model.Table, error) {
	detections, err := e.Detections()
	if err != nil {
		return nil, err
	}

	r := tables.NewReconstructor()
	r.RowGap = e.options.rowGap
	r.SortByPosition = e.options.sortDetections
	return r.Reconstruct(detections)
}

// CSV runs the full pipeline and writes the table as CSV to the given path.
func (e *Extractor) CSV(path string) error {
	table, err := e.Table()
	if err != nil {
		return err
	}
	return tabular.WriteFile(path, table)
}

// Slide runs the full pipeline and renders the table as a single-slide
// PPTX presentation at the given path.
func (e *Extractor) Slide(path string) error {
	table, err := e.Table()
	if err != nil {
		return err
	}
	return pptx.NewWriter().Write(path, table)
}

// Detections runs the image stages of the pipeline (rasterize, deskew,
// strip gridlines, detect text) and returns the raw detection sequence.
// Useful together with ocr.SaveDetections to snapshot engine output.
func (e *Extractor) Detections() ([]model.Detection, error) {
	if e.err != nil {
		return nil, e.err
	}

	img, err := e.pageImage()
	if err != nil {
		return nil, err
	}
	if err := e.debugDump("extract.png", img); err != nil {
		return nil, err
	}

	deskewer := imaging.NewDeskewer()
	if e.options.region != nil {
		roi := model.NewBBox(e.options.region.x, e.options.region.y,
			e.options.region.width, e.options.region.height)
		deskewer.Region = &roi
	}
	deskewed, err := deskewer.Deskew(img)
	if err != nil {
		return nil, err
	}
	if err := e.debugDump("deskew.png", deskewed); err != nil {
		return nil, err
	}

	remover := imaging.NewLineRemover()
	remover.KernelLength = e.options.kernelLength
	remover.Stroke = e.options.stroke
	stripped := remover.Strip(deskewed)
	if err := e.debugDump("striplines.png", stripped); err != nil {
		return nil, err
	}

	detector, owned, err := e.ensureDetector()
	if err != nil {
		return nil, err
	}
	if owned != nil {
		defer owned.Close()
	}
	return detector.DetectText(stripped)
}

// pageImage resolves the source into a page bitmap: through the rasterizer
// for PDFs, or by direct decode for pre-rendered page images.
func (e *Extractor) pageImage() (image.Image, error) {
	if e.rasterizer != nil {
		return e.renderPage(e.rasterizer)
	}

	if e.filename == "" {
		return nil, fmt.Errorf("no source specified")
	}

	f := format.DetectFile(e.filename)
	switch {
	case f == format.PDF:
		doc, err := raster.Open(e.filename)
		if err != nil {
			return nil, err
		}
		defer doc.Close()
		return e.renderPage(doc)

	case f.IsImage():
		if e.options.page != 0 {
			return nil, fmt.Errorf("%w: image input has a single page", raster.ErrPageOutOfRange)
		}
		return decodeImageFile(e.filename)

	default:
		return nil, fmt.Errorf("unsupported input format for %s", e.filename)
	}
}

// renderPage validates the page index against the document and renders it.
func (e *Extractor) renderPage(r Rasterizer) (image.Image, error) {
	if n := r.PageCount(); e.options.page >= n {
		return nil, fmt.Errorf("%w: page %d of %d", raster.ErrPageOutOfRange, e.options.page, n)
	}
	return r.RenderPage(e.options.page, e.options.dpi)
}

// ensureDetector returns the detector to use. When none was injected, a
// default OCR client is created; the second return value is non-nil when
// the caller of the pipeline owns closing it.
func (e *Extractor) ensureDetector() (TextDetector, *ocr.Client, error) {
	if e.detector != nil {
		return e.detector, nil, nil
	}
	client, err := ocr.New()
	if err != nil {
		return nil, nil, err
	}
	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			client.Close()
			return nil, nil, err
		}
	}
	return client, client, nil
}

// debugDump writes an intermediate bitmap into the debug directory.
func (e *Extractor) debugDump(name string, img image.Image) error {
	if e.options.debugDir == "" {
		return nil
	}
	if err := os.MkdirAll(e.options.debugDir, 0755); err != nil {
		return fmt.Errorf("creating debug dir: %w", err)
	}
	path := filepath.Join(e.options.debugDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug dump %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding debug dump %s: %w", path, err)
	}
	return f.Close()
}

// decodeImageFile decodes a pre-rendered page image (PNG, JPEG, or TIFF).
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", raster.ErrDocumentNotFound, path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
