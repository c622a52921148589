package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// Defaults for gridline removal, tuned for ruled tables scanned at 300 DPI.
const (
	DefaultKernelLength = 40
	DefaultStroke       = 5
	DefaultIterations   = 2
)

// LineRemover erases horizontal and vertical ruling lines from a scanned
// table image, leaving glyph content behind so the text detector is not
// confused by lines running through or alongside characters.
//
// The heuristic keys on run length: a morphological opening with a wide flat
// element keeps only ink runs at least KernelLength pixels long, and those
// survivors are painted over in background color. Any text stroke forming an
// unbroken run of that length is erased too; that is a limitation of the
// approach, not a defect.
type LineRemover struct {
	// KernelLength is the structuring element length in pixels. Runs
	// shorter than this survive removal.
	KernelLength int

	// Stroke is the thickness painted over each detected line, wide
	// enough to also clear antialiased remnants along the line edges.
	Stroke int

	// Iterations is the number of erode/dilate repetitions of the opening.
	Iterations int
}

// NewLineRemover creates a LineRemover with defaults.
func NewLineRemover() *LineRemover {
	return &LineRemover{
		KernelLength: DefaultKernelLength,
		Stroke:       DefaultStroke,
		Iterations:   DefaultIterations,
	}
}

// Strip returns a copy of the image with ruling lines erased. The analysis
// runs on an inverted Otsu binarization so ink is foreground regardless of
// scan exposure.
func (lr *LineRemover) Strip(img image.Image) image.Image {
	gray := Grayscale(img)
	bin := BinarizeInv(gray, OtsuThreshold(gray))

	result := image.NewRGBA(img.Bounds())
	draw.Draw(result, img.Bounds(), img, img.Bounds().Min, draw.Src)

	// Horizontal ruling lines, then vertical.
	horizontal := OpenRect(bin, lr.KernelLength, 1, lr.Iterations)
	for _, c := range FindContours(horizontal) {
		lr.paintOver(result, c)
	}

	vertical := OpenRect(bin, 1, lr.KernelLength, lr.Iterations)
	for _, c := range FindContours(vertical) {
		lr.paintOver(result, c)
	}

	return result
}

// paintOver strokes the contour in background white with the configured
// thickness, centered on the traced boundary.
func (lr *LineRemover) paintOver(dst *image.RGBA, c Contour) {
	half := lr.Stroke / 2
	bounds := dst.Bounds()
	for _, p := range c {
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				x, y := bounds.Min.X+p.X+dx, bounds.Min.Y+p.Y+dy
				if image.Pt(x, y).In(bounds) {
					dst.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
				}
			}
		}
	}
}
