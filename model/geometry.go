package model

import "math"

// Point represents a 2D point in image coordinates (origin top-left,
// Y increasing downward).
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (image coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Quad is a quadrilateral described by four corners in a fixed order:
// top-left, top-right, bottom-right, bottom-left.
type Quad [4]Point

// NewQuadFromRect builds an axis-aligned quad from edge coordinates.
func NewQuadFromRect(left, top, right, bottom float64) Quad {
	return Quad{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}

// TopLeft returns the first corner.
func (q Quad) TopLeft() Point { return q[0] }

// BottomLeft returns the fourth corner. Its Y coordinate is the row
// membership signal used during reconstruction.
func (q Quad) BottomLeft() Point { return q[3] }

// Bounds returns the axis-aligned bounding box of the quad.
func (q Quad) Bounds() BBox {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := q[0].X, q[0].Y
	for _, p := range q[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
