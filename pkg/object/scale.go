package object

import "github.com/caustic-rt/caustic/pkg/core"

// Scale stretches a node by per-axis factors about the origin. Normals
// transform by the inverse scale and are renormalized, keeping them
// perpendicular to the scaled surface.
type Scale struct {
	core.NonSampled
	object  core.Node
	factor  core.Vec3
	inverse core.Vec3
	bbox    core.AABB
}

// NewScale wraps a node with a per-axis scale. Factors must be nonzero.
func NewScale(object core.Node, factor core.Vec3) *Scale {
	inverse := core.NewVec3(1/factor.X, 1/factor.Y, 1/factor.Z)

	// Scale all corners, take the envelope (handles negative factors)
	corners := object.BoundingBox().Corners()
	bbox := core.NewAABBFromPoints(corners[0].MultiplyVec(factor), corners[1].MultiplyVec(factor))
	for _, corner := range corners[2:] {
		scaled := corner.MultiplyVec(factor)
		bbox = core.NewAABBFromBoxes(bbox, core.NewAABBFromPoints(scaled, scaled))
	}

	return &Scale{
		object:  object,
		factor:  factor,
		inverse: inverse,
		bbox:    bbox,
	}
}

// Hit intersects the inversely scaled ray against the wrapped node
func (s *Scale) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	objectRay := core.NewRayAt(
		ray.Origin.MultiplyVec(s.inverse),
		ray.Direction.MultiplyVec(s.inverse),
		ray.Time,
	)

	hit, ok := s.object.Hit(ctx, objectRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.MultiplyVec(s.factor)
	hit.Normal = hit.Normal.MultiplyVec(s.inverse).Normalize()
	return hit, true
}

// BoundingBox returns the envelope of the scaled box
func (s *Scale) BoundingBox() core.AABB {
	return s.bbox
}
