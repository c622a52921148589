// scantab is a command-line tool for extracting a table from a scanned PDF
// page and exporting it as CSV and/or a single-slide PPTX presentation.
//
// Usage:
//
//	scantab -input scan.pdf -csv table.csv [options]
//
// Required flags:
//
//	-input string     Path to the input PDF or pre-rendered page image (PNG, JPEG, TIFF)
//
// Output options (at least one required):
//
//	-csv string       Write the extracted table as CSV to this path
//	-pptx string      Render the extracted table as a one-slide PPTX at this path
//	-snapshot string  Save the raw detection sequence as JSON to this path
//
// Processing options:
//
//	-page int         0-based page index to extract (default 0)
//	-dpi int          Render resolution for PDF input (default 300)
//	-row-gap float    Vertical jump in pixels that starts a new row (default 20)
//	-kernel int       Minimum run length treated as a ruling line (default 40)
//	-lang string      OCR language(s), e.g. "eng" or "eng+fra"
//	-sort             Sort detections by position before row clustering
//	-replay string    Reconstruct from a saved detection snapshot instead of running OCR
//	-debug-dir string Dump intermediate bitmaps into this directory
//
// Examples:
//
// Extract page 0 of a scan to CSV:
//
//	scantab -input scan.pdf -csv table.csv
//
// Extract to both CSV and a slide, keeping intermediates for inspection:
//
//	scantab -input scan.pdf -csv table.csv -pptx deck.pptx -debug-dir out/debug
//
// Re-run reconstruction from a saved snapshot with a different row gap:
//
//	scantab -input scan.pdf -replay detections.json -row-gap 25 -csv table.csv
//
// PDF rendering and OCR require building with the corresponding tags:
//
//	go build -tags "mupdf ocr" ./cmd/scantab
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/tsawler/scantab"
	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/ocr"
	"github.com/tsawler/scantab/pptx"
	"github.com/tsawler/scantab/tables"
	"github.com/tsawler/scantab/tabular"
)

// snapshotDetector replays a saved detection sequence instead of invoking
// the OCR engine.
type snapshotDetector struct {
	detections []model.Detection
}

func (s *snapshotDetector) DetectText(img image.Image) ([]model.Detection, error) {
	return s.detections, nil
}

func main() {
	inputPath := flag.String("input", "", "Path to the input PDF or page image")
	csvPath := flag.String("csv", "", "Write the extracted table as CSV to this path")
	pptxPath := flag.String("pptx", "", "Render the extracted table as a one-slide PPTX at this path")
	snapshotPath := flag.String("snapshot", "", "Save the raw detection sequence as JSON to this path")
	page := flag.Int("page", 0, "0-based page index to extract")
	dpi := flag.Int("dpi", 300, "Render resolution for PDF input")
	rowGap := flag.Float64("row-gap", 20, "Vertical jump in pixels that starts a new row")
	kernel := flag.Int("kernel", 40, "Minimum run length in pixels treated as a ruling line")
	lang := flag.String("lang", "", "OCR language(s), e.g. \"eng\" or \"eng+fra\"")
	sortDetections := flag.Bool("sort", false, "Sort detections by position before row clustering")
	replayPath := flag.String("replay", "", "Reconstruct from a saved detection snapshot instead of running OCR")
	debugDir := flag.String("debug-dir", "", "Dump intermediate bitmaps into this directory")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Error: Must provide -input path")
		os.Exit(1)
	}
	if *csvPath == "" && *pptxPath == "" && *snapshotPath == "" {
		fmt.Println("Error: Must provide at least one of -csv, -pptx, or -snapshot")
		os.Exit(1)
	}

	extractor := scantab.Open(*inputPath).
		Page(*page).
		DPI(*dpi).
		RowGap(*rowGap).
		KernelLength(*kernel)
	if *lang != "" {
		extractor = extractor.Language(*lang)
	}
	if *sortDetections {
		extractor = extractor.SortDetections()
	}
	if *debugDir != "" {
		extractor = extractor.DebugDir(*debugDir)
	}
	if *replayPath != "" {
		detections, err := ocr.LoadDetectionsFile(*replayPath)
		if err != nil {
			fmt.Printf("Error loading snapshot: %v\n", err)
			os.Exit(1)
		}
		extractor = extractor.WithDetector(&snapshotDetector{detections: detections})
	}

	detections, err := extractor.Detections()
	if err != nil {
		fmt.Printf("Error extracting detections: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Detected %d text runs\n", len(detections))

	if *snapshotPath != "" {
		if err := ocr.SaveDetectionsFile(*snapshotPath, detections); err != nil {
			fmt.Printf("Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved detection snapshot to %s\n", *snapshotPath)
	}

	if *csvPath == "" && *pptxPath == "" {
		return
	}

	reconstructor := tables.NewReconstructor()
	reconstructor.RowGap = *rowGap
	reconstructor.SortByPosition = *sortDetections
	table, err := reconstructor.Reconstruct(detections)
	if err != nil {
		fmt.Printf("Error reconstructing table: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reconstructed %d rows (%d columns at the widest)\n", table.RowCount(), table.MaxColumns())

	if *csvPath != "" {
		if err := tabular.WriteFile(*csvPath, table); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *csvPath)
	}
	if *pptxPath != "" {
		if err := pptx.NewWriter().Write(*pptxPath, table); err != nil {
			fmt.Printf("Error writing PPTX: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *pptxPath)
	}
}
