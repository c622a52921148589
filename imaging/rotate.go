package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/tsawler/scantab/model"
)

// RotateAbout rotates an image by angle degrees (positive is
// counter-clockwise in image coordinates) about the given center, with
// bilinear interpolation. The output has the same dimensions as the input;
// regions rotated in from outside the source are filled with white, matching
// the paper background of a scan.
func RotateAbout(img image.Image, center model.Point, angle float64) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	// Affine source-to-destination map for a rotation about an arbitrary
	// center: translate to the origin, rotate, translate back.
	m := f64.Aff3{
		cos, sin, (1-cos)*center.X - sin*center.Y,
		-sin, cos, sin*center.X + (1-cos)*center.Y,
	}

	xdraw.BiLinear.Transform(out, m, img, bounds, xdraw.Over, nil)
	return out
}
