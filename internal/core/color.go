package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed 0xRRGGBB pixel value, the cell type of a Framebuffer.
// The top byte is unused and always zero.
type Color uint32

// Predefined colors used by the default world.
const (
	ColorBlack Color = 0x000000
	ColorWhite Color = 0xFFFFFF
	ColorGreen Color = 0x00FF00
	ColorBlue  Color = 0x0000FF
	ColorGold  Color = 0xFFD700
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB unpacks the color into 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA converts the color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// FromRGBA packs a color.Color, dropping alpha.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or a CSS color name ("lime", "crimson").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("core: empty color")
	}

	var digits string
	switch {
	case strings.HasPrefix(s, "#"):
		digits = s[1:]
	case strings.HasPrefix(s, "0x"):
		digits = s[2:]
	default:
		named, ok := colornames.Map[s]
		if !ok {
			return 0, fmt.Errorf("core: unknown color name %q", s)
		}
		return FromRGBA(named), nil
	}

	if len(digits) != 6 {
		return 0, fmt.Errorf("core: color %q must have 6 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// MarshalYAML writes the color as "#rrggbb".
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML accepts anything ParseColor accepts, plus bare integers.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case int:
		if v < 0 || v > 0xFFFFFF {
			return fmt.Errorf("core: color %d out of range", v)
		}
		*c = Color(v)
		return nil
	case string:
		parsed, err := ParseColor(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("core: cannot use %T as a color", raw)
	}
}
