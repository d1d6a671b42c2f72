// Package world implements the platformer simulation: a single player body
// moving under gravity and input through a static set of platforms.
// It has no windowing, terminal or logging dependencies.
package world

import "github.com/vovakirdan/leapengine/internal/core"

// Body is a positioned, sized, colored axis-aligned rectangle.
type Body struct {
	X, Y  float64
	W, H  uint
	Color core.Color
}

// Bounds returns the body's bounding box.
func (b Body) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Paint writes the body's color into every cell it covers.
// Cells outside dst are skipped.
func (b Body) Paint(dst *core.Framebuffer) {
	dst.DrawRect(b.Bounds(), b.Color)
}
