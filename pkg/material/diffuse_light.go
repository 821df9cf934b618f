package material

import (
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// DiffuseLight is a pure emitter: it never scatters, and emits only
// from its front face
type DiffuseLight struct {
	tex core.Texture
}

// NewDiffuseLight creates a light emitting the given texture
func NewDiffuseLight(tex core.Texture) *DiffuseLight {
	return &DiffuseLight{tex: tex}
}

// NewDiffuseLightColor creates a light emitting a solid color
func NewDiffuseLightColor(emit core.Color) *DiffuseLight {
	return &DiffuseLight{tex: texture.NewSolidColor(emit)}
}

// Scatter always returns false
func (d *DiffuseLight) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF returns 0
func (d *DiffuseLight) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture value on the front face, black on the back
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Black
	}
	return d.tex.Value(hit.U, hit.V, hit.Point)
}
