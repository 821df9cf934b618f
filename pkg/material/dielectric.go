package material

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water.
// Attenuation is always white; tinted glass is not supported.
type Dielectric struct {
	refractionIndex float64
}

// NewDielectric creates a dielectric with the given refraction index.
// An index below 1 models a bubble of thinner medium inside a denser
// one, e.g. air inside glass.
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{refractionIndex: refractionIndex}
}

// Scatter refracts the ray by Snell's law, falling back to reflection
// on total internal reflection or a Schlick reflectance draw
func (d *Dielectric) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	ri := d.refractionIndex
	if hit.FrontFace {
		ri = 1 / d.refractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, ri) > ctx.Rand.Float() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ri)
	}

	return core.ScatterResult{
		Attenuation: core.White,
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF returns 0: specular scattering has no sampled density
func (d *Dielectric) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflectance is Schlick's polynomial approximation of the Fresnel term
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
