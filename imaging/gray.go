package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// Grayscale converts an image to 8-bit grayscale. If the input is already
// an *image.Gray it is returned as-is.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	g := image.NewGray(bounds)
	draw.Draw(g, bounds, img, bounds.Min, draw.Src)
	return g
}

// Histogram computes the 256-bin intensity histogram of a grayscale image.
func Histogram(g *image.Gray) [256]int {
	var hist [256]int
	bounds := g.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := g.Pix[(y-bounds.Min.Y)*g.Stride : (y-bounds.Min.Y)*g.Stride+bounds.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}
	return hist
}

// OtsuThreshold computes the global threshold that maximizes between-class
// variance of the intensity histogram.
func OtsuThreshold(g *image.Gray) uint8 {
	hist := Histogram(g)

	total := 0
	sum := 0.0
	for i, n := range hist {
		total += n
		sum += float64(i) * float64(n)
	}
	if total == 0 {
		return 0
	}

	var (
		sumBackground    float64
		weightBackground int
		bestVariance     float64
		bestThreshold    uint8
	)
	for i := 0; i < 256; i++ {
		weightBackground += hist[i]
		if weightBackground == 0 {
			continue
		}
		weightForeground := total - weightBackground
		if weightForeground == 0 {
			break
		}
		sumBackground += float64(i) * float64(hist[i])

		meanBackground := sumBackground / float64(weightBackground)
		meanForeground := (sum - sumBackground) / float64(weightForeground)
		diff := meanBackground - meanForeground
		variance := float64(weightBackground) * float64(weightForeground) * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = uint8(i)
		}
	}
	return bestThreshold
}

// BinarizeInv thresholds a grayscale image with ink as foreground: pixels at
// or below the threshold become 255, the rest 0. Scanned tables are dark ink
// on light paper, so the inverted form puts glyphs and ruling lines in the
// foreground.
func BinarizeInv(g *image.Gray, threshold uint8) *image.Gray {
	bounds := g.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if g.GrayAt(x, y).Y <= threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
