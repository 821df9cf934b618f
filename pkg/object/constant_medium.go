package object

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// ConstantMedium is a participating medium of uniform density bounded
// by another node. Rays passing through it scatter after an
// exponentially distributed free path; the boundary must be a closed
// solid so entry and exit points exist.
type ConstantMedium struct {
	core.NonSampled
	boundary      core.Node
	negInvDensity float64
	phaseFunction core.Material
}

// NewConstantMedium creates a medium inside boundary with the given
// density and phase function material
func NewConstantMedium(boundary core.Node, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1 / density,
		phaseFunction: phaseFunction,
	}
}

// Hit finds the span of the ray inside the boundary and stochastically
// places a scattering event on it. Rays that never exit the boundary
// pass through unaffected.
func (m *ConstantMedium) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	hit1, ok := m.boundary.Hit(ctx, ray, core.UniverseInterval)
	if !ok {
		return nil, false
	}

	hit2, ok := m.boundary.Hit(ctx, ray, core.NewInterval(hit1.T+1e-4, math.Inf(1)))
	if !ok {
		return nil, false
	}

	tEnter := math.Max(hit1.T, rayT.Min)
	tExit := math.Min(hit2.T, rayT.Max)
	if tEnter >= tExit {
		return nil, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEnter) * rayLength
	hitDistance := m.negInvDensity * math.Log(ctx.Rand.Float())

	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
