package material

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/pdf"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// Lambertian is an ideal diffuse surface. Scattered directions follow
// a cosine-weighted distribution around the surface normal.
type Lambertian struct {
	tex core.Texture
}

// NewLambertian creates a diffuse material with the given texture
func NewLambertian(tex core.Texture) *Lambertian {
	return &Lambertian{tex: tex}
}

// NewLambertianColor creates a diffuse material with a solid albedo
func NewLambertianColor(albedo core.Color) *Lambertian {
	return &Lambertian{tex: texture.NewSolidColor(albedo)}
}

// Scatter returns a cosine density for the integrator to sample, plus
// a fallback scattered ray for callers that skip importance sampling
func (l *Lambertian) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(ctx.Rand))
	if direction.NearZero() {
		// Sampled vector canceled the normal; degenerate direction
		// would be unusable downstream
		direction = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
		PDF:         pdf.NewCosine(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(theta)/pi for directions above the surface
func (l *Lambertian) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
