package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/tsawler/scantab/model"
)

// ErrNoTableRegion is returned by Deskew when edge detection yields no
// contours at all, meaning no candidate table region exists to align to.
var ErrNoTableRegion = errors.New("no table region detected")

// Default Canny hysteresis thresholds for scans at 300 DPI.
const (
	DefaultLowThreshold  = 50
	DefaultHighThreshold = 150
)

// Deskewer corrects the rotation of a scanned page so that the edges of the
// dominant quadrilateral region (assumed to be the table) become
// axis-aligned.
//
// The table region is located as the largest-area external contour of the
// Canny edge map. That "biggest blob wins" rule works on pages dominated by
// a single ruled table; Region can be set to restrict the search to a known
// area of the page when it does not.
type Deskewer struct {
	// LowThreshold and HighThreshold are the Canny hysteresis thresholds.
	LowThreshold  float64
	HighThreshold float64

	// Region, when non-nil, restricts contour detection to this area of
	// the image instead of relying on the largest-contour heuristic.
	Region *model.BBox
}

// NewDeskewer creates a Deskewer with default thresholds.
func NewDeskewer() *Deskewer {
	return &Deskewer{
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
	}
}

// Deskew rotates the whole image so the detected table region's long edge
// becomes horizontal. The output has the same dimensions as the input.
func (d *Deskewer) Deskew(img image.Image) (image.Image, error) {
	rect, err := d.tableRect(img)
	if err != nil {
		return nil, err
	}
	angle := normalizeAngle(rect.Angle)
	return RotateAbout(img, rect.Center, angle), nil
}

// DetectAngle reports the rotation Deskew would apply, in degrees, without
// rotating. Useful for inspecting scans and for verifying that deskewing an
// already-aligned image is a no-op.
func (d *Deskewer) DetectAngle(img image.Image) (float64, error) {
	rect, err := d.tableRect(img)
	if err != nil {
		return 0, err
	}
	return normalizeAngle(rect.Angle), nil
}

// tableRect finds the minimum-area rotated rectangle around the dominant
// table contour.
func (d *Deskewer) tableRect(img image.Image) (RotatedRect, error) {
	gray := Grayscale(img)
	edges := Canny(gray, d.LowThreshold, d.HighThreshold)

	contours := FindContours(edges)
	if d.Region != nil {
		contours = filterByRegion(contours, *d.Region)
	}

	largest, ok := LargestContour(contours)
	if !ok {
		return RotatedRect{}, fmt.Errorf("deskew: %w", ErrNoTableRegion)
	}
	return MinAreaRect(largest), nil
}

// normalizeAngle collapses the axis ambiguity of the minimum-area rectangle:
// raw angles below -45 describe the same rectangle rotated a quarter turn,
// so they are folded back to keep the long edge horizontal.
func normalizeAngle(angle float64) float64 {
	if angle < -45 {
		angle += 90
	}
	return angle
}

// filterByRegion keeps contours whose bounding box center lies inside the
// region of interest.
func filterByRegion(contours []Contour, region model.BBox) []Contour {
	var kept []Contour
	for _, c := range contours {
		b := c.BoundingBox()
		center := model.Point{
			X: float64(b.Min.X+b.Max.X) / 2,
			Y: float64(b.Min.Y+b.Max.Y) / 2,
		}
		if region.Contains(center) {
			kept = append(kept, c)
		}
	}
	return kept
}
