package object

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Sphere is an analytic sphere. The center is stored as a ray so the
// sphere can move linearly over the shutter interval: the effective
// center at shutter time t is center.At(t).
type Sphere struct {
	center core.Ray
	radius float64
	mat    core.Material
	bbox   core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center: core.NewRay(center, core.NewVec3(0, 0, 0)),
		radius: radius,
		mat:    mat,
		bbox:   core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere that moves from center1 at time 0 to
// center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat core.Material) *Sphere {
	s := NewSphere(center1, radius, mat)
	s.SetDirection(center2.Subtract(center1))
	return s
}

// SetDirection puts the sphere in motion along the given displacement
// over the shutter interval and recomputes the bounding box as the
// union of the boxes at times 0 and 1
func (s *Sphere) SetDirection(direction core.Vec3) {
	s.center = core.NewRay(s.center.Origin, direction)

	rvec := core.NewVec3(s.radius, s.radius, s.radius)
	box0 := core.NewAABBFromPoints(s.center.At(0).Subtract(rvec), s.center.At(0).Add(rvec))
	box1 := core.NewAABBFromPoints(s.center.At(1).Subtract(rvec), s.center.At(1).Add(rvec))
	s.bbox = core.NewAABBFromBoxes(box0, box1)
}

// Hit tests ray-sphere intersection, preferring the nearer quadratic root
func (s *Sphere) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	currentCenter := s.center.At(ray.Time)
	oc := currentCenter.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.mat,
	}
	outwardNormal := hit.Point.Subtract(currentCenter).Divide(s.radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u,v) in [0,1]^2
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the box covering the sphere over the full shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the solid-angle density of sampling the sphere from
// origin. Only valid for stationary spheres used as lights.
func (s *Sphere) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	if _, ok := s.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); !ok {
		return 0
	}

	distSquared := s.center.At(0).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.radius*s.radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// RandomDirection samples a direction from origin toward the sphere,
// uniform over the cone of directions that hit it
func (s *Sphere) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	toCenter := s.center.At(0).Subtract(origin)
	distSquared := toCenter.LengthSquared()

	basis := core.NewONB(toCenter)
	return basis.Transform(randomToSphere(ctx.Rand, s.radius, distSquared))
}

func randomToSphere(rnd core.Random, radius, distSquared float64) core.Vec3 {
	r1 := rnd.Float()
	r2 := rnd.Float()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distSquared)-1)

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)

	return core.NewVec3(x, y, z)
}
