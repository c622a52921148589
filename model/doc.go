// Package model provides the shared data types for the table extraction
// pipeline.
//
// This package defines the structures that flow between pipeline stages:
// geometric primitives ([Point], [BBox], [Quad]), OCR results ([Detection]),
// and the reconstructed [Table]. All extraction operations ultimately produce
// these types, making them the primary API for consuming extracted content.
//
// # Detections
//
// A [Detection] is one result from the text detection engine: a quadrilateral
// locating the text on the page image plus the recognized string. Corners are
// ordered top-left, top-right, bottom-right, bottom-left; row reconstruction
// keys off the bottom-left corner's Y coordinate.
//
// # Tables
//
// A [Table] is an ordered sequence of rows, each an ordered sequence of cell
// strings. Rows are ragged: no column alignment is computed, so rows may have
// differing lengths. Consumers that need a rectangular grid should pad short
// rows out to [Table.MaxColumns].
package model
