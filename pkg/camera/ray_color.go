package camera

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/pdf"
)

// Shadow acne epsilon: secondary rays start this far along to avoid
// re-hitting the surface they left
const shadowEpsilon = 0.001

// Floor on the sampled pdf value. Dividing by near-zero densities
// produces fireflies; below the floor the path is dropped, trading a
// small bias for bounded variance.
const pdfFloor = 0.05

// Firefly clamp bounds for a single path contribution, per channel
const maxPathContribution = 10.0

// rayColor recursively evaluates the light arriving along a ray
func (c *Camera) rayColor(ctx *core.RenderContext, ray core.Ray, depth int, world, lights core.Node) core.Color {
	if depth <= 0 {
		return core.Black
	}

	hit, ok := world.Hit(ctx, ray, core.NewInterval(shadowEpsilon, math.Inf(1)))
	if !ok {
		return c.background
	}

	emitted := core.Black
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(ray, hit)
	}

	scatter, ok := hit.Material.Scatter(ctx, ray, hit)
	if !ok {
		return emitted
	}

	if scatter.IsSpecular() {
		bounce := c.rayColor(ctx, scatter.Scattered, depth-1, world, lights)
		return scatter.Attenuation.MultiplyVec(bounce)
	}

	// Diffuse branch: mix light-surface sampling with the material's
	// own density when a lights node is available
	var density core.PDF = scatter.PDF
	if lights != nil {
		density = pdf.NewMixture(pdf.NewHittable(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAt(hit.Point, density.Generate(ctx), ray.Time)
	pdfValue := density.Value(ctx, scattered.Direction)
	if pdfValue < pdfFloor {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ctx, ray, hit, scattered)
	sample := c.rayColor(ctx, scattered, depth-1, world, lights)

	contribution := scatter.Attenuation.
		MultiplyVec(sample).
		Multiply(scatteringPDF / pdfValue).
		Clamp(0, maxPathContribution)

	return emitted.Add(contribution)
}
