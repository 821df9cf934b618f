package texture

import "github.com/caustic-rt/caustic/pkg/core"

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	albedo core.Color
}

// NewSolidColor creates a uniform color texture
func NewSolidColor(albedo core.Color) *SolidColor {
	return &SolidColor{albedo: albedo}
}

// Value returns the color, ignoring coordinates
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Color {
	return s.albedo
}
