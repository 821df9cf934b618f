package object

import (
	"sort"

	"github.com/caustic-rt/caustic/pkg/core"
)

// BVH is a binary bounding volume hierarchy built once per scene by
// median split along the longest axis. Construction is deterministic
// for a fixed input order; equal sort keys keep their relative order.
type BVH struct {
	core.NonSampled
	left  core.Node
	right core.Node
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the given nodes. Must be called with
// at least one node.
func NewBVH(objects []core.Node) *BVH {
	// Own the slice: construction sorts subranges in place
	owned := make([]core.Node, len(objects))
	copy(owned, objects)
	return buildBVH(owned)
}

func buildBVH(objects []core.Node) *BVH {
	switch len(objects) {
	case 1:
		// Degenerate leaf: both children alias the single node
		return &BVH{
			left:  objects[0],
			right: objects[0],
			bbox:  objects[0].BoundingBox(),
		}
	case 2:
		return &BVH{
			left:  objects[0],
			right: objects[1],
			bbox:  core.NewAABBFromBoxes(objects[0].BoundingBox(), objects[1].BoundingBox()),
		}
	}

	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = core.NewAABBFromBoxes(bbox, obj.BoundingBox())
	}

	axis := bbox.LongestAxis()
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})

	mid := len(objects) / 2
	return &BVH{
		left:  buildBVH(objects[:mid]),
		right: buildBVH(objects[mid:]),
		bbox:  bbox,
	}
}

// Hit tests the node's own box first, then recurses nearest-first: a
// left hit shrinks the interval before the right subtree is tested, so
// a right hit, when present, is always at least as close and wins.
func (b *BVH) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if !b.bbox.Hit(ray, rayT) {
		return nil, false
	}

	hitLeft, okLeft := b.left.Hit(ctx, ray, rayT)
	if okLeft {
		rayT.Max = hitLeft.T
	}

	if hitRight, okRight := b.right.Hit(ctx, ray, rayT); okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}

// BoundingBox returns the box around the whole subtree
func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}
