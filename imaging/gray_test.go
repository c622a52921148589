package imaging

import (
	"image"
	"image/color"
	"testing"
)

// fillRect paints a rectangle of the given gray level.
func fillRect(g *image.Gray, r image.Rectangle, v uint8) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.SetGray(x, y, color.Gray{Y: v})
		}
	}
}

func TestGrayscalePassthrough(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 10, 10))
	if Grayscale(g) != g {
		t.Error("Grayscale of *image.Gray should return the same image")
	}
}

func TestGrayscaleConvertsColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	g := Grayscale(src)
	if g.GrayAt(2, 2).Y < 250 {
		t.Errorf("White should stay near white, got %d", g.GrayAt(2, 2).Y)
	}
}

func TestOtsuThresholdBimodal(t *testing.T) {
	// Half dark ink (20), half light paper (230). Otsu should land between.
	g := image.NewGray(image.Rect(0, 0, 20, 20))
	fillRect(g, image.Rect(0, 0, 20, 10), 20)
	fillRect(g, image.Rect(0, 10, 20, 20), 230)

	thresh := OtsuThreshold(g)
	if thresh < 20 || thresh >= 230 {
		t.Errorf("Expected threshold between modes, got %d", thresh)
	}
}

func TestBinarizeInvForegroundIsInk(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	fillRect(g, g.Bounds(), 230)
	g.SetGray(1, 1, color.Gray{Y: 10})

	bin := BinarizeInv(g, 128)
	if bin.GrayAt(1, 1).Y != 255 {
		t.Error("Dark pixel should be foreground after inverted binarization")
	}
	if bin.GrayAt(2, 2).Y != 0 {
		t.Error("Light pixel should be background after inverted binarization")
	}
}
