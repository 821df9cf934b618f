package pdf

import "github.com/caustic-rt/caustic/pkg/core"

// Mixture blends two densities: half the samples come from each, and
// the value is their mean. Combining a light-surface density with the
// material's own density gives multiple importance sampling.
type Mixture struct {
	p0, p1 core.PDF
}

// NewMixture creates a 50/50 mixture of two densities
func NewMixture(p0, p1 core.PDF) *Mixture {
	return &Mixture{p0: p0, p1: p1}
}

// Value returns the mean of the component densities
func (m *Mixture) Value(ctx *core.RenderContext, direction core.Vec3) float64 {
	return 0.5*m.p0.Value(ctx, direction) + 0.5*m.p1.Value(ctx, direction)
}

// Generate draws from either component with equal probability
func (m *Mixture) Generate(ctx *core.RenderContext) core.Vec3 {
	if ctx.Rand.Float() < 0.5 {
		return m.p0.Generate(ctx)
	}
	return m.p1.Generate(ctx)
}
