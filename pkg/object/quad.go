package object

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Quad is a planar parallelogram spanned by edge vectors u and v from
// corner q
type Quad struct {
	q, u, v core.Vec3
	w       core.Vec3 // n / (n . n), for planar coordinates
	normal  core.Vec3
	d       float64
	area    float64
	mat     core.Material
	bbox    core.AABB
}

// NewQuad creates a parallelogram from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3, mat core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	bboxDiag1 := core.NewAABBFromPoints(q, q.Add(u).Add(v))
	bboxDiag2 := core.NewAABBFromPoints(q.Add(u), q.Add(v))

	return &Quad{
		q:      q,
		u:      u,
		v:      v,
		w:      n.Divide(n.Dot(n)),
		normal: normal,
		d:      normal.Dot(q),
		area:   n.Length(),
		mat:    mat,
		bbox:   core.NewAABBFromBoxes(bboxDiag1, bboxDiag2),
	}
}

// Hit intersects the ray with the quad's plane and checks the planar
// coordinates fall inside the parallelogram
func (q *Quad) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denom := q.normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if !rayT.Contains(t) {
		return nil, false
	}

	intersection := ray.At(t)
	planarHit := intersection.Subtract(q.q)
	alpha := q.w.Dot(planarHit.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(planarHit))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    intersection,
		U:        alpha,
		V:        beta,
		Material: q.mat,
	}
	hit.SetFaceNormal(ray, q.normal)
	return hit, true
}

// BoundingBox returns the padded box around the parallelogram
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue returns the solid-angle density of sampling the quad from origin
func (q *Quad) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := q.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return 0
	}

	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.normal) / direction.Length())

	return distSquared / (cosine * q.area)
}

// RandomDirection samples a uniform point on the quad and returns the
// direction from origin to it
func (q *Quad) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	p := q.q.
		Add(q.u.Multiply(ctx.Rand.Float())).
		Add(q.v.Multiply(ctx.Rand.Float()))
	return p.Subtract(origin)
}
