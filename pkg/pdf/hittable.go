package pdf

import "github.com/caustic-rt/caustic/pkg/core"

// Hittable is the density of sampling directions from a fixed origin
// toward a node's surface, used to aim rays at known lights
type Hittable struct {
	objects core.Node
	origin  core.Vec3
}

// NewHittable creates a surface-sampling density toward the given node
func NewHittable(objects core.Node, origin core.Vec3) *Hittable {
	return &Hittable{objects: objects, origin: origin}
}

// Value delegates to the node's pdf value
func (h *Hittable) Value(ctx *core.RenderContext, direction core.Vec3) float64 {
	return h.objects.PDFValue(ctx, h.origin, direction)
}

// Generate delegates to the node's surface sampling
func (h *Hittable) Generate(ctx *core.RenderContext) core.Vec3 {
	return h.objects.RandomDirection(ctx, h.origin)
}
