package imaging

import (
	"image"
	"math"
)

// Canny runs Canny edge detection on a grayscale image and returns a binary
// edge map (edges at 255). low and high are the hysteresis thresholds on the
// L1 gradient magnitude: pixels above high are strong edges, pixels between
// low and high survive only when 8-connected to a strong edge.
func Canny(g *image.Gray, low, high float64) *image.Gray {
	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 3 || h < 3 {
		return image.NewGray(bounds)
	}

	at := func(x, y int) float64 {
		return float64(g.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
	}

	// Sobel gradients with L1 magnitude.
	mag := make([]float64, w*h)
	dir := make([]uint8, w*h) // quantized: 0=E/W, 1=NE/SW, 2=N/S, 3=NW/SE
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1) +
				-at(x-1, y+1) - 2*at(x, y+1) - at(x+1, y+1)

			i := y*w + x
			mag[i] = math.Abs(gx) + math.Abs(gy)

			angle := math.Atan2(gy, gx) * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}
			switch {
			case angle < 22.5 || angle >= 157.5:
				dir[i] = 0
			case angle < 67.5:
				dir[i] = 1
			case angle < 112.5:
				dir[i] = 2
			default:
				dir[i] = 3
			}
		}
	}

	// Non-maximum suppression along the gradient direction.
	thin := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			var a, b float64
			switch dir[i] {
			case 0:
				a, b = mag[i-1], mag[i+1]
			case 1:
				a, b = mag[(y-1)*w+x+1], mag[(y+1)*w+x-1]
			case 2:
				a, b = mag[(y-1)*w+x], mag[(y+1)*w+x]
			default:
				a, b = mag[(y-1)*w+x-1], mag[(y+1)*w+x+1]
			}
			if mag[i] >= a && mag[i] >= b {
				thin[i] = mag[i]
			}
		}
	}

	// Double threshold plus hysteresis: grow strong edges into weak ones.
	const (
		none   = 0
		weak   = 1
		strong = 2
	)
	labels := make([]uint8, w*h)
	var stack []int
	for i, m := range thin {
		switch {
		case m >= high:
			labels[i] = strong
			stack = append(stack, i)
		case m >= low:
			labels[i] = weak
		}
	}

	out := image.NewGray(bounds)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, y := i%w, i/w
		out.Pix[y*out.Stride+x] = 255

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if labels[j] == weak {
					labels[j] = strong
					stack = append(stack, j)
				}
			}
		}
	}
	return out
}
