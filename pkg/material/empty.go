package material

import "github.com/caustic-rt/caustic/pkg/core"

// Empty neither scatters nor emits. Scenes attach it to stand-in nodes
// that exist only to steer light sampling, such as the copy of a lamp
// quad placed in the lights group.
type Empty struct{}

// NewEmpty creates an empty material
func NewEmpty() *Empty {
	return &Empty{}
}

// Scatter always returns false
func (e *Empty) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF returns 0
func (e *Empty) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
