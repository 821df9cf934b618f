package object

import "github.com/caustic-rt/caustic/pkg/core"

// Translate shifts a node by a fixed offset. The incoming ray is moved
// into object space, intersected there, and the hit point moved back.
type Translate struct {
	core.NonSampled
	object core.Node
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps a node with a translation
func NewTranslate(object core.Node, offset core.Vec3) *Translate {
	return &Translate{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Add(offset),
	}
}

// Hit intersects the offset ray against the wrapped node
func (t *Translate) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	hit, ok := t.object.Hit(ctx, offsetRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox returns the translated box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
