package pdf

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Sphere is the uniform density over all directions
type Sphere struct{}

// NewSphere creates a uniform sphere density
func NewSphere() *Sphere {
	return &Sphere{}
}

// Value returns 1/(4*pi) for every direction
func (s *Sphere) Value(ctx *core.RenderContext, direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform random unit vector
func (s *Sphere) Generate(ctx *core.RenderContext) core.Vec3 {
	return core.RandomUnitVector(ctx.Rand)
}
