package object

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Disc is a planar circular surface, usable as a frustum cap or as an
// importance-sampled area light
type Disc struct {
	center core.Vec3
	normal core.Vec3 // unit
	radius float64
	mat    core.Material
	bbox   core.AABB
}

// NewDisc creates a disc from its center, plane normal and radius
func NewDisc(center, normal core.Vec3, radius float64, mat core.Material) *Disc {
	rvec := core.NewVec3(radius, radius, radius)
	return &Disc{
		center: center,
		normal: normal.Normalize(),
		radius: radius,
		mat:    mat,
		bbox:   core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// Hit intersects the ray with the disc's plane and tests the radial distance
func (d *Disc) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denom := d.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.normal.Dot(d.center.Subtract(ray.Origin)) / denom
	if !rayT.Contains(t) {
		return nil, false
	}

	point := ray.At(t)
	offset := point.Subtract(d.center)
	if offset.LengthSquared() > d.radius*d.radius {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		U:        offset.Length() / d.radius,
		Material: d.mat,
	}
	hit.SetFaceNormal(ray, d.normal)
	return hit, true
}

// BoundingBox returns the padded box around the disc
func (d *Disc) BoundingBox() core.AABB {
	return d.bbox
}

// PDFValue returns the solid-angle density of sampling the disc from origin
func (d *Disc) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := d.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return 0
	}

	area := math.Pi * d.radius * d.radius
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(d.normal) / direction.Length())

	return distSquared / (cosine * area)
}

// RandomDirection samples a uniform point on the disc by polar
// inverse-transform sampling and returns the direction from origin to it
func (d *Disc) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	r := math.Sqrt(ctx.Rand.Float()) * d.radius
	phi := 2 * math.Pi * ctx.Rand.Float()

	basis := core.NewONB(d.normal)
	local := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), 0)
	point := d.center.Add(basis.Transform(local))

	return point.Subtract(origin)
}
