package texture

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Checker is a 3D checkerboard alternating two textures based on the
// integer lattice cell of the hit point
type Checker struct {
	invScale float64
	even     core.Texture
	odd      core.Texture
}

// NewChecker creates a checker with the given cell scale and component textures
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{invScale: 1 / scale, even: even, odd: odd}
}

// NewCheckerColors creates a checker alternating two solid colors
func NewCheckerColors(scale float64, even, odd core.Color) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture by the parity of the lattice cell
func (c *Checker) Value(u, v float64, p core.Vec3) core.Color {
	x := int(math.Floor(c.invScale * p.X))
	y := int(math.Floor(c.invScale * p.Y))
	z := int(math.Floor(c.invScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.even.Value(u, v, p)
	}
	return c.odd.Value(u, v, p)
}
