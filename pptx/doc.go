// Package pptx renders an extracted table into a minimal PPTX (Office Open
// XML Presentation) file: one slide carrying one table.
//
// The deck layout is deliberately plain. The table fills the slide, with one
// grid cell per table cell; short rows are padded with blank trailing cells
// so the grid is rows × maxColumns. Formatting beyond that is out of scope.
package pptx
