package material

import "github.com/caustic-rt/caustic/pkg/core"

// Metal is a specular reflector. Fuzz perturbs the reflected direction
// to simulate surface roughness; perturbed rays that end up below the
// surface are absorbed.
type Metal struct {
	albedo core.Color
	fuzz   float64
}

// NewMetal creates a metal with the given tint and roughness in [0, 1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	return &Metal{albedo: albedo, fuzz: min(fuzz, 1)}
}

// Scatter reflects the incident ray about the normal with fuzz perturbation
func (m *Metal) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(ctx.Rand).Multiply(m.fuzz))

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.albedo,
		Scattered:   core.NewRayAt(hit.Point, reflected, rayIn.Time),
	}, true
}

// ScatteringPDF returns 0: specular scattering has no sampled density
func (m *Metal) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
