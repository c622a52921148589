package imaging

import (
	"image"
	"math"
	"sort"

	"github.com/tsawler/scantab/model"
)

// Contour is the traced outer boundary of a connected foreground region,
// as an ordered closed polygon of pixel coordinates.
type Contour []image.Point

// Area returns the enclosed area of the contour by the shoelace formula.
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		sum += float64(c[i].X)*float64(c[j].Y) - float64(c[j].X)*float64(c[i].Y)
	}
	return math.Abs(sum) / 2
}

// BoundingBox returns the axis-aligned bounds of the contour.
func (c Contour) BoundingBox() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c[0], Max: c[0].Add(image.Pt(1, 1))}
	for _, p := range c[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X >= r.Max.X {
			r.Max.X = p.X + 1
		}
		if p.Y >= r.Max.Y {
			r.Max.Y = p.Y + 1
		}
	}
	return r
}

// FindContours traces the outer boundaries of all 8-connected foreground
// regions in a binary image. Holes are not reported; only external contours.
func FindContours(bin *image.Gray) []Contour {
	bounds := bin.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	fg := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return bin.Pix[y*bin.Stride+x] != 0
	}

	visited := make([]bool, w*h)
	var contours []Contour

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !fg(x, y) || visited[y*w+x] {
				continue
			}
			c := traceBoundary(fg, x, y)
			contours = append(contours, c)
			floodMark(fg, visited, w, h, x, y)
		}
	}
	return contours
}

// traceBoundary follows the outer boundary of the component containing the
// start pixel using Moore-neighbor tracing with Jacob's stopping criterion.
// The start pixel is the topmost-leftmost pixel of its component, so the
// backtrack direction west is always background.
func traceBoundary(fg func(x, y int) bool, startX, startY int) Contour {
	// Clockwise Moore neighborhood starting west.
	dirs := [8]image.Point{
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	}

	contour := Contour{{X: startX, Y: startY}}
	cur := image.Pt(startX, startY)
	prevDir := 0 // came from the west

	for {
		found := false
		for i := 0; i < 8; i++ {
			d := (prevDir + 6 + i) % 8 // resume scan just past the backtrack
			n := cur.Add(dirs[d])
			if fg(n.X, n.Y) {
				cur = n
				prevDir = d
				found = true
				break
			}
		}
		if !found {
			// Isolated pixel.
			return contour
		}
		if cur.X == startX && cur.Y == startY {
			return contour
		}
		contour = append(contour, cur)
		if len(contour) > 1<<22 {
			// Safety valve against pathological inputs.
			return contour
		}
	}
}

// floodMark marks every pixel of the component as visited so its boundary
// is traced only once.
func floodMark(fg func(x, y int) bool, visited []bool, w, h, x, y int) {
	stack := []image.Point{{X: x, Y: y}}
	visited[y*w+x] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if fg(nx, ny) && !visited[ny*w+nx] {
					visited[ny*w+nx] = true
					stack = append(stack, image.Pt(nx, ny))
				}
			}
		}
	}
}

// LargestContour returns the contour with maximum enclosed area, or false
// when the slice is empty.
func LargestContour(contours []Contour) (Contour, bool) {
	if len(contours) == 0 {
		return nil, false
	}
	best := contours[0]
	bestArea := best.Area()
	for _, c := range contours[1:] {
		if a := c.Area(); a > bestArea {
			best, bestArea = c, a
		}
	}
	return best, true
}

// RotatedRect is a rectangle with arbitrary orientation. Angle is in
// degrees in [-90, 0): -90 for an axis-aligned rectangle, approaching 0 as
// the rectangle tilts. This matches the convention of the classic
// minimum-area-rectangle routine the deskew heuristic was tuned against.
type RotatedRect struct {
	Center model.Point
	Width  float64
	Height float64
	Angle  float64
}

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain, returned in counter-clockwise order.
func ConvexHull(points []image.Point) []image.Point {
	if len(points) < 3 {
		return append([]image.Point(nil), points...)
	}

	pts := append([]image.Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool { return less(pts[i], pts[j]) })

	cross := func(o, a, b image.Point) int64 {
		return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
	}

	var hull []image.Point
	// Lower hull.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper hull.
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func less(a, b image.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// MinAreaRect computes the minimum-area rotated rectangle enclosing the
// points by rotating calipers over the convex hull edges.
func MinAreaRect(points []image.Point) RotatedRect {
	hull := ConvexHull(points)
	if len(hull) == 0 {
		return RotatedRect{}
	}
	if len(hull) == 1 {
		p := hull[0]
		return RotatedRect{Center: model.Point{X: float64(p.X), Y: float64(p.Y)}, Angle: -90}
	}

	best := RotatedRect{Width: math.Inf(1), Height: math.Inf(1)}
	bestArea := math.Inf(1)

	for i := range hull {
		j := (i + 1) % len(hull)
		theta := math.Atan2(float64(hull[j].Y-hull[i].Y), float64(hull[j].X-hull[i].X))
		// Rectangle orientation repeats every quarter turn.
		theta = math.Mod(theta, math.Pi/2)
		if theta < 0 {
			theta += math.Pi / 2
		}

		cos, sin := math.Cos(theta), math.Sin(theta)
		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			u := cos*float64(p.X) + sin*float64(p.Y)
			v := -sin*float64(p.X) + cos*float64(p.Y)
			minU, maxU = math.Min(minU, u), math.Max(maxU, u)
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
		}

		width := maxU - minU
		height := maxV - minV
		area := width * height
		if area >= bestArea {
			continue
		}
		bestArea = area

		cu := (minU + maxU) / 2
		cv := (minV + maxV) / 2
		best = RotatedRect{
			Center: model.Point{
				X: cos*cu - sin*cv,
				Y: sin*cu + cos*cv,
			},
			Width:  width,
			Height: height,
			Angle:  theta*180/math.Pi - 90,
		}
	}
	return best
}
