// Package core provides fundamental types and utilities for the engine.
// It contains no windowing or terminal dependencies to keep the simulation
// pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Position may be fractional; W and H are whole pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H uint    // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y float64, w, h uint) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Width returns W as a float64.
func (r Rect) Width() float64 {
	return float64(r.W)
}

// Height returns H as a float64.
func (r Rect) Height() float64 {
	return float64(r.H)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + float64(r.W)
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + float64(r.H)
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) && r.OverlapsY(other)
}

// OverlapsX reports whether the horizontal spans overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// OverlapsY reports whether the vertical spans overlap.
func (r Rect) OverlapsY(other Rect) bool {
	return r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Cells returns the integer pixel span covered by the rectangle:
// [x0, x0+W) x [y0, y0+H) where x0 and y0 are the truncated position.
func (r Rect) Cells() (x0, y0, x1, y1 int) {
	x0 = int(math.Trunc(r.X))
	y0 = int(math.Trunc(r.Y))
	return x0, y0, x0 + int(r.W), y0 + int(r.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
