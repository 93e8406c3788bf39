package core

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit-per-channel RGB color.
// Arithmetic happens in the unit cube and is clamped back on conversion,
// so channels never leave [0, 255].
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromUnit converts a unit-cube color back to 8 bits, clamping each
// channel to [0, 1]. Fractional channel values are truncated.
func ColorFromUnit(rgb Vec3) Color {
	rgb = rgb.Clamp(0, 1)
	return Color{
		R: uint8(rgb.X * 255),
		G: uint8(rgb.Y * 255),
		B: uint8(rgb.Z * 255),
	}
}

// Unit returns the color mapped to the unit cube [0,1]³
func (c Color) Unit() Vec3 {
	return Vec3{
		X: float64(c.R) / 255,
		Y: float64(c.G) / 255,
		Z: float64(c.B) / 255,
	}
}

// DirectProduct multiplies two colors channel by channel
func (c Color) DirectProduct(other Color) Color {
	return ColorFromUnit(c.Unit().MultiplyVec(other.Unit()))
}

// Scale multiplies every channel by a scalar
func (c Color) Scale(multiplier float64) Color {
	return ColorFromUnit(c.Unit().Multiply(multiplier))
}

// IsBlack reports whether all channels are zero
func (c Color) IsBlack() bool {
	return c == Black
}

// ToRGBA converts to an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String formats the color as a PPM pixel: "R G B"
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}
