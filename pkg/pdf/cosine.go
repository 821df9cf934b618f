package pdf

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Cosine is a cosine-weighted density over the hemisphere around a
// surface normal, the matching importance distribution for Lambertian
// scattering
type Cosine struct {
	basis core.ONB
}

// NewCosine creates a cosine density around the given normal
func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{basis: core.NewONB(normal)}
}

// Value returns max(cos(theta)/pi, 0) for the angle against the normal
func (c *Cosine) Value(ctx *core.RenderContext, direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(c.basis.W)
	return math.Max(cosTheta/math.Pi, 0)
}

// Generate draws a cosine-weighted direction in the hemisphere
func (c *Cosine) Generate(ctx *core.RenderContext) core.Vec3 {
	return c.basis.Transform(core.RandomCosineDirection(ctx.Rand))
}
