package imaging

import "image"

// ErodeRect erodes a binary image with a w×h rectangular structuring
// element. A pixel survives only when every pixel under the element is
// foreground; pixels outside the image count as background.
func ErodeRect(bin *image.Gray, w, h int) *image.Gray {
	return rectFilter(bin, w, h, true)
}

// DilateRect dilates a binary image with a w×h rectangular structuring
// element: a pixel becomes foreground when any pixel under the element is
// foreground.
func DilateRect(bin *image.Gray, w, h int) *image.Gray {
	return rectFilter(bin, w, h, false)
}

// OpenRect applies a morphological opening (erosion then dilation) with a
// w×h rectangular element, repeated for the given number of iterations the
// way morphologyEx does: all erosions first, then all dilations. A wide flat
// element isolates horizontal runs at least w pixels long; a tall thin one
// isolates vertical runs.
func OpenRect(bin *image.Gray, w, h, iterations int) *image.Gray {
	out := bin
	for i := 0; i < iterations; i++ {
		out = ErodeRect(out, w, h)
	}
	for i := 0; i < iterations; i++ {
		out = DilateRect(out, w, h)
	}
	return out
}

// rectFilter runs a separable min (erode) or max (dilate) filter. The
// rectangular element is separable into a horizontal then a vertical pass.
func rectFilter(bin *image.Gray, w, h int, erode bool) *image.Gray {
	out := bin
	if w > 1 {
		out = linePass(out, w, true, erode)
	}
	if h > 1 {
		out = linePass(out, h, false, erode)
	}
	if out == bin {
		out = copyGray(bin)
	}
	return out
}

// linePass applies a 1-D min/max filter of the given length along one axis.
// The element is anchored at its center (length/2 from the left/top).
func linePass(bin *image.Gray, length int, horizontal, erode bool) *image.Gray {
	bounds := bin.Bounds()
	w, hgt := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)

	before := length / 2
	after := length - 1 - before

	if horizontal {
		for y := 0; y < hgt; y++ {
			row := bin.Pix[y*bin.Stride : y*bin.Stride+w]
			dst := out.Pix[y*out.Stride : y*out.Stride+w]
			lineMinMax(row, dst, before, after, erode)
		}
		return out
	}

	col := make([]uint8, hgt)
	res := make([]uint8, hgt)
	for x := 0; x < w; x++ {
		for y := 0; y < hgt; y++ {
			col[y] = bin.Pix[y*bin.Stride+x]
		}
		lineMinMax(col, res, before, after, erode)
		for y := 0; y < hgt; y++ {
			out.Pix[y*out.Stride+x] = res[y]
		}
	}
	return out
}

// lineMinMax fills dst with the windowed min (erode) or max (dilate) of
// src. Out-of-range samples are background, which for binary images makes
// the erode border behave as if padded with zeros.
func lineMinMax(src, dst []uint8, before, after int, erode bool) {
	n := len(src)
	for i := 0; i < n; i++ {
		lo := i - before
		hi := i + after
		if erode {
			v := uint8(255)
			if lo < 0 || hi >= n {
				v = 0
			} else {
				for j := lo; j <= hi; j++ {
					if src[j] < v {
						v = src[j]
					}
				}
			}
			dst[i] = v
		} else {
			v := uint8(0)
			if lo < 0 {
				lo = 0
			}
			if hi >= n {
				hi = n - 1
			}
			for j := lo; j <= hi; j++ {
				if src[j] > v {
					v = src[j]
				}
			}
			dst[i] = v
		}
	}
}

func copyGray(g *image.Gray) *image.Gray {
	out := image.NewGray(g.Bounds())
	copy(out.Pix, g.Pix)
	return out
}
