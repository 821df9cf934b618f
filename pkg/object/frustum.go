package object

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Frustum is a closed solid of revolution around a vertical axis: a
// side wall whose radius interpolates linearly from baseRadius at the
// base to topRadius at the top, closed by cap discs. Cones and
// cylinders are the degenerate cases.
type Frustum struct {
	group *Group
}

// Cap radii below this are treated as a point and the cap is omitted
const minCapRadius = 1e-4

// NewFrustum creates a frustum standing on baseCenter, extending height
// along +Y
func NewFrustum(baseCenter core.Vec3, height, baseRadius, topRadius float64, mat core.Material) *Frustum {
	group := NewGroup(newFrustumWall(baseCenter, height, baseRadius, topRadius, mat))

	if baseRadius >= minCapRadius {
		group.Add(NewDisc(baseCenter, core.NewVec3(0, -1, 0), baseRadius, mat))
	}
	if topRadius >= minCapRadius {
		top := baseCenter.Add(core.NewVec3(0, height, 0))
		group.Add(NewDisc(top, core.NewVec3(0, 1, 0), topRadius, mat))
	}

	return &Frustum{group: group}
}

// NewCone creates a cone standing on baseCenter with its apex at height
func NewCone(baseCenter core.Vec3, height, radius float64, mat core.Material) *Frustum {
	return NewFrustum(baseCenter, height, radius, 0, mat)
}

// NewCylinder creates a cylinder standing on baseCenter
func NewCylinder(baseCenter core.Vec3, height, radius float64, mat core.Material) *Frustum {
	return NewFrustum(baseCenter, height, radius, radius, mat)
}

// Hit delegates to the wall and cap group
func (f *Frustum) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return f.group.Hit(ctx, ray, rayT)
}

// BoundingBox returns the box around the wall and caps
func (f *Frustum) BoundingBox() core.AABB {
	return f.group.BoundingBox()
}

// PDFValue averages over the wall and caps, matching Group semantics
func (f *Frustum) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	return f.group.PDFValue(ctx, origin, direction)
}

// RandomDirection samples one of the wall and caps uniformly
func (f *Frustum) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	return f.group.RandomDirection(ctx, origin)
}

// frustumWall is the analytic lateral surface of a frustum. The radius
// at height y above the base is r0 + k*y with k = (r1-r0)/height.
type frustumWall struct {
	base   core.Vec3
	height float64
	r0, r1 float64
	k      float64
	area   float64 // lateral surface area
	mat    core.Material
	bbox   core.AABB
}

func newFrustumWall(base core.Vec3, height, r0, r1 float64, mat core.Material) *frustumWall {
	slant := math.Sqrt(height*height + (r1-r0)*(r1-r0))
	rMax := math.Max(r0, r1)

	return &frustumWall{
		base:   base,
		height: height,
		r0:     r0,
		r1:     r1,
		k:      (r1 - r0) / height,
		area:   math.Pi * (r0 + r1) * slant,
		mat:    mat,
		bbox: core.NewAABBFromPoints(
			base.Subtract(core.NewVec3(rMax, 0, rMax)),
			base.Add(core.NewVec3(rMax, height, rMax)),
		),
	}
}

// Hit solves the quadratic for the lateral surface x^2+z^2 = r(y)^2
// in base-relative coordinates and accepts the nearest root whose
// height lies within the wall
func (w *frustumWall) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	dx := ray.Origin.X - w.base.X
	dy := ray.Origin.Y - w.base.Y
	dz := ray.Origin.Z - w.base.Z
	ddx, ddy, ddz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	// Radius of the surface at the ray origin's height
	c0 := w.r0 + w.k*dy

	a := ddx*ddx + ddz*ddz - w.k*w.k*ddy*ddy
	b := 2 * (dx*ddx + dz*ddz - c0*w.k*ddy)
	c := dx*dx + dz*dz - c0*c0

	if math.Abs(a) < 1e-12 {
		// Ray parallel to the slant surface: at most one crossing
		if math.Abs(b) < 1e-12 {
			return nil, false
		}
		return w.hitAt(ray, -c/b, rayT)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtd := math.Sqrt(discriminant)

	t0 := (-b - sqrtd) / (2 * a)
	t1 := (-b + sqrtd) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if hit, ok := w.hitAt(ray, t0, rayT); ok {
		return hit, true
	}
	return w.hitAt(ray, t1, rayT)
}

func (w *frustumWall) hitAt(ray core.Ray, t float64, rayT core.Interval) (*core.HitRecord, bool) {
	if !rayT.Surrounds(t) {
		return nil, false
	}

	point := ray.At(t)
	y := point.Y - w.base.Y
	if y < 0 || y > w.height {
		return nil, false
	}

	// Gradient of x^2+z^2-r(y)^2
	px := point.X - w.base.X
	pz := point.Z - w.base.Z
	radius := w.r0 + w.k*y
	outwardNormal := core.NewVec3(px, -w.k*radius, pz).Normalize()

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		U:        (math.Atan2(-pz, px) + math.Pi) / (2 * math.Pi),
		V:        y / w.height,
		Material: w.mat,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the box around the wall
func (w *frustumWall) BoundingBox() core.AABB {
	return w.bbox
}

// PDFValue returns the solid-angle density of sampling the wall from origin
func (w *frustumWall) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := w.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return 0
	}

	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())

	return distSquared / (cosine * w.area)
}

// RandomDirection samples a point uniformly over the lateral surface.
// The height is drawn by inverse transform with density proportional
// to the local circumference.
func (w *frustumWall) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	u := ctx.Rand.Float()
	phi := 2 * math.Pi * ctx.Rand.Float()

	var y float64
	if math.Abs(w.k) < 1e-12 {
		y = u * w.height
	} else {
		total := w.height * (w.r0 + w.r1) / 2
		y = (-w.r0 + math.Sqrt(w.r0*w.r0+2*w.k*u*total)) / w.k
	}

	radius := w.r0 + w.k*y
	point := w.base.Add(core.NewVec3(radius*math.Cos(phi), y, radius*math.Sin(phi)))

	return point.Subtract(origin)
}
