package scantab

import (
	"github.com/tsawler/scantab/imaging"
	"github.com/tsawler/scantab/raster"
	"github.com/tsawler/scantab/tables"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Source selection
	page int // 0-based page index
	dpi  int // render resolution for PDF input

	// Stage tuning
	rowGap       float64 // row-break threshold in pixels
	kernelLength int     // gridline structuring element length
	stroke       int     // gridline paint-over thickness
	region       *regionOfInterest

	// Detection
	language       string // OCR language(s), "" uses the engine default
	sortDetections bool   // sort detections by position before clustering

	// Debugging
	debugDir string // when non-empty, intermediate bitmaps are dumped here
}

type regionOfInterest struct {
	x, y, width, height float64
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		page:         0,
		dpi:          raster.DefaultDPI,
		rowGap:       tables.DefaultRowGap,
		kernelLength: imaging.DefaultKernelLength,
		stroke:       imaging.DefaultStroke,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.region != nil {
		r := *o.region
		newOpts.region = &r
	}
	return newOpts
}
