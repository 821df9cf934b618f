package object

import "github.com/caustic-rt/caustic/pkg/core"

// Group is an unordered list of nodes intersected by linear scan.
// Suited to small collections; large scenes should wrap their nodes in
// a BVH instead.
type Group struct {
	Objects []core.Node
	bbox    core.AABB
}

// NewGroup creates a group from the given nodes
func NewGroup(objects ...core.Node) *Group {
	g := &Group{}
	for _, obj := range objects {
		g.Add(obj)
	}
	return g
}

// Add appends a node and grows the bounding box
func (g *Group) Add(object core.Node) {
	if len(g.Objects) == 0 {
		g.bbox = object.BoundingBox()
	} else {
		g.bbox = core.NewAABBFromBoxes(g.bbox, object.BoundingBox())
	}
	g.Objects = append(g.Objects, object)
}

// Hit scans all children, shrinking the search interval to the closest
// hit found so far
func (g *Group) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range g.Objects {
		if hit, ok := object.Hit(ctx, ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box around all children
func (g *Group) BoundingBox() core.AABB {
	return g.bbox
}

// PDFValue returns the mean of the children's pdf values, i.e. each
// child light is picked with uniform weight
func (g *Group) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	if len(g.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range g.Objects {
		sum += object.PDFValue(ctx, origin, direction)
	}
	return sum / float64(len(g.Objects))
}

// RandomDirection picks a uniform random child and delegates to it
func (g *Group) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	if len(g.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	i := ctx.Rand.IntInterval(0, len(g.Objects)-1)
	return g.Objects[i].RandomDirection(ctx, origin)
}
