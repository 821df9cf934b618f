package object

import (
	"github.com/caustic-rt/caustic/pkg/core"
)

// Rotate spins a node about an arbitrary axis through the origin. Rays
// are rotated into object space by the inverse rotation; hit points and
// normals come back through the forward rotation.
type Rotate struct {
	core.NonSampled
	object  core.Node
	forward core.Matrix3
	inverse core.Matrix3
	bbox    core.AABB
}

// NewRotate wraps a node with a rotation of angle radians about axis
func NewRotate(object core.Node, axis core.Vec3, angle float64) *Rotate {
	forward := core.NewRotationMatrix(axis, angle)

	// Conservative box: rotate all corners, take the envelope
	corners := object.BoundingBox().Corners()
	bbox := core.NewAABBFromPoints(forward.MultiplyVec(corners[0]), forward.MultiplyVec(corners[1]))
	for _, corner := range corners[2:] {
		rotated := forward.MultiplyVec(corner)
		bbox = core.NewAABBFromBoxes(bbox, core.NewAABBFromPoints(rotated, rotated))
	}

	return &Rotate{
		object:  object,
		forward: forward,
		inverse: forward.Transpose(),
		bbox:    bbox,
	}
}

// NewRotateX wraps a node with a rotation about the X axis
func NewRotateX(object core.Node, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(1, 0, 0), angle)
}

// NewRotateY wraps a node with a rotation about the Y axis
func NewRotateY(object core.Node, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 1, 0), angle)
}

// NewRotateZ wraps a node with a rotation about the Z axis
func NewRotateZ(object core.Node, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 0, 1), angle)
}

// Hit intersects the counter-rotated ray against the wrapped node
func (r *Rotate) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	objectRay := core.NewRayAt(
		r.inverse.MultiplyVec(ray.Origin),
		r.inverse.MultiplyVec(ray.Direction),
		ray.Time,
	)

	hit, ok := r.object.Hit(ctx, objectRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = r.forward.MultiplyVec(hit.Point)
	hit.Normal = r.forward.MultiplyVec(hit.Normal)
	return hit, true
}

// BoundingBox returns the conservative envelope of the rotated box
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
