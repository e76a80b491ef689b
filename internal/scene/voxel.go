package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB triple. Channels start in [0,1] but are not clamped,
// so boosted light colors can exceed 1.
type Color struct {
	R, G, B float32
}

// ParseColor decodes a "#rrggbb" sRGB string into linear RGB.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return Color{R: float32(r), G: float32(g), B: float32(b)}, nil
}

// MustColor is ParseColor for compile-time palette constants.
func MustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Vec returns the channels as an array, handy for uniform uploads.
func (c Color) Vec() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Voxel is one unit cube at integer grid coordinates.
type Voxel struct {
	Position [3]int
	Color    Color
	IsLight  bool
}

// Colors is the parsed palette the generator paints with.
type Colors struct {
	Sky             Color
	Mountain        Color
	GroundCity      Color
	GroundCityLight Color
	MosqueBase      Color
	MosqueAccent    Color
	Dome            Color
	MinaretLight    Color
	MinaretShaft    Color
}
