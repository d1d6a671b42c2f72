package world

import (
	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
)

// Platform is a static collider. It never moves after construction.
type Platform struct {
	body Body
}

// NewPlatform creates a platform with the given position, size and color.
func NewPlatform(x, y float64, w, h uint, color core.Color) Platform {
	return Platform{body: Body{X: x, Y: y, W: w, H: h, Color: color}}
}

// platformsFromConfig builds platforms in config order.
func platformsFromConfig(cfgs []config.PlatformConfig) []Platform {
	out := make([]Platform, 0, len(cfgs))
	for _, c := range cfgs {
		out = append(out, NewPlatform(c.X, c.Y, c.W, c.H, c.Color))
	}
	return out
}

// Bounds returns the platform's bounding box.
func (p Platform) Bounds() core.Rect {
	return p.body.Bounds()
}

// Color returns the platform's fill color.
func (p Platform) Color() core.Color {
	return p.body.Color
}

// Paint draws the platform.
func (p Platform) Paint(dst *core.Framebuffer) {
	p.body.Paint(dst)
}
