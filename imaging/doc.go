// Package imaging implements the image processing stages of the table
// extraction pipeline: skew correction and gridline removal, together with
// the primitives they are built from (grayscale conversion, Otsu
// thresholding, Canny edge detection, external contour tracing, minimum-area
// rotated rectangles, and morphological filtering).
//
// The two pipeline stages are [Deskewer] and [LineRemover]. Both accept and
// return full-color images; all analysis happens on internal grayscale or
// binary working copies. The primitives are exported because they are useful
// for tuning and debugging the heuristics on real scans.
//
// All operations treat images in the usual raster convention: origin at the
// top-left, Y increasing downward. Binary images are *image.Gray with
// foreground pixels at 255 and background at 0.
package imaging
