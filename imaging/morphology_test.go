package imaging

import (
	"image"
	"testing"
)

// drawHLine paints a horizontal foreground run.
func drawHLine(g *image.Gray, x0, x1, y, thickness int) {
	for ty := y; ty < y+thickness; ty++ {
		for x := x0; x < x1; x++ {
			g.Pix[ty*g.Stride+x] = 255
		}
	}
}

// drawVLine paints a vertical foreground run.
func drawVLine(g *image.Gray, x, y0, y1, thickness int) {
	for tx := x; tx < x+thickness; tx++ {
		for y := y0; y < y1; y++ {
			g.Pix[y*g.Stride+tx] = 255
		}
	}
}

func countForeground(g *image.Gray) int {
	n := 0
	for _, v := range g.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestOpenRectKeepsLongRuns(t *testing.T) {
	bin := image.NewGray(image.Rect(0, 0, 300, 100))
	drawHLine(bin, 50, 250, 40, 2) // 200px line, longer than the kernel

	opened := OpenRect(bin, 40, 1, 2)
	if countForeground(opened) == 0 {
		t.Fatal("Long horizontal run should survive opening")
	}

	contours := FindContours(opened)
	if len(contours) != 1 {
		t.Fatalf("Expected one surviving run, got %d", len(contours))
	}
	b := contours[0].BoundingBox()
	if b.Min.Y < 39 || b.Max.Y > 43 {
		t.Errorf("Surviving run drifted vertically: %v", b)
	}
}

func TestOpenRectDropsShortRuns(t *testing.T) {
	bin := image.NewGray(image.Rect(0, 0, 300, 100))
	drawHLine(bin, 100, 125, 40, 2) // 25px stroke, shorter than the kernel

	opened := OpenRect(bin, 40, 1, 2)
	if n := countForeground(opened); n != 0 {
		t.Errorf("Short run should be removed by opening, %d pixels remain", n)
	}
}

func TestOpenRectVerticalKernel(t *testing.T) {
	bin := image.NewGray(image.Rect(0, 0, 100, 300))
	drawVLine(bin, 50, 30, 270, 2) // long vertical line
	drawHLine(bin, 20, 80, 150, 2) // horizontal stroke crossing it

	opened := OpenRect(bin, 1, 40, 2)
	contours := FindContours(opened)
	if len(contours) != 1 {
		t.Fatalf("Expected only the vertical line to survive, got %d contours", len(contours))
	}
	b := contours[0].BoundingBox()
	if b.Dx() > 6 {
		t.Errorf("Survivor should be thin and vertical: %v", b)
	}
}

func TestErodeDilateRoundTrip(t *testing.T) {
	bin := image.NewGray(image.Rect(0, 0, 200, 50))
	drawHLine(bin, 30, 170, 25, 1) // 140px run

	eroded := ErodeRect(bin, 40, 1)
	if countForeground(eroded) == 0 {
		t.Fatal("140px run should survive a single 40px erosion")
	}

	restored := DilateRect(eroded, 40, 1)
	b := FindContours(restored)[0].BoundingBox()
	if b.Dx() < 135 || b.Dx() > 145 {
		t.Errorf("Dilation should roughly restore run length, got %d", b.Dx())
	}
}
