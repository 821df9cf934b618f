package material

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/pdf"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// Isotropic scatters uniformly in all directions, serving as the phase
// function inside a constant-density medium
type Isotropic struct {
	tex core.Texture
}

// NewIsotropic creates an isotropic phase function with the given texture
func NewIsotropic(tex core.Texture) *Isotropic {
	return &Isotropic{tex: tex}
}

// NewIsotropicColor creates an isotropic phase function with a solid albedo
func NewIsotropicColor(albedo core.Color) *Isotropic {
	return &Isotropic{tex: texture.NewSolidColor(albedo)}
}

// Scatter returns a uniform sphere density
func (i *Isotropic) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, core.RandomUnitVector(ctx.Rand), rayIn.Time),
		PDF:         pdf.NewSphere(),
	}, true
}

// ScatteringPDF returns the uniform sphere density 1/(4*pi)
func (i *Isotropic) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
