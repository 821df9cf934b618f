package core

import "math"

// Color is an RGB triple in linear space, stored as a Vec3 with X=red,
// Y=green, Z=blue.
type Color = Vec3

// NewColor creates a new Color from red, green and blue components
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// LinearToGamma converts a linear color to gamma space (gamma 2) and
// clamps each channel to [0, 0.999]
func (v Vec3) LinearToGamma() Color {
	return Color{
		X: linearToGamma(v.X),
		Y: linearToGamma(v.Y),
		Z: linearToGamma(v.Z),
	}
}

func linearToGamma(c float64) float64 {
	if c > 0 {
		c = math.Sqrt(c)
	} else {
		c = 0
	}
	return max(0, min(0.999, c))
}

// NaNToZero replaces NaN channels with zero
func (v Vec3) NaNToZero() Color {
	return Color{
		X: nanToZero(v.X),
		Y: nanToZero(v.Y),
		Z: nanToZero(v.Z),
	}
}

func nanToZero(c float64) float64 {
	if math.IsNaN(c) {
		return 0
	}
	return c
}
