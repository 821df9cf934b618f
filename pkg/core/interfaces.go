package core

// HitRecord holds the result of a successful ray-object intersection.
// Records are created fresh per intersection test and not retained.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3 // always faces against the incident ray
	T         float64
	U, V      float64 // surface texture coordinates
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients the normal against the incident ray and records
// which side was hit. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Node is a scene graph element: anything a ray can intersect. Nodes
// are built once during scene construction and are read-only, shareable
// between parents and threads for the duration of a render.
type Node interface {
	// Hit returns the nearest intersection with t in the open interval
	// (rayT.Min, rayT.Max), or false if the ray misses
	Hit(ctx *RenderContext, ray Ray, rayT Interval) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the node for all ray times
	BoundingBox() AABB

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin toward this node. Zero means the node
	// cannot be importance-sampled as a light.
	PDFValue(ctx *RenderContext, origin, direction Vec3) float64

	// RandomDirection returns a sampled direction from origin toward
	// the node's surface
	RandomDirection(ctx *RenderContext, origin Vec3) Vec3
}

// NonSampled provides the default no-op light-sampling behavior for
// nodes that cannot act as importance-sampled lights. Callers treat a
// zero pdf as "skip this node when sampling lights".
type NonSampled struct{}

// PDFValue returns 0
func (NonSampled) PDFValue(ctx *RenderContext, origin, direction Vec3) float64 {
	return 0
}

// RandomDirection returns an arbitrary fixed unit vector
func (NonSampled) RandomDirection(ctx *RenderContext, origin Vec3) Vec3 {
	return NewVec3(1, 0, 0)
}

// ScatterResult describes how a material redirects an incident ray.
// Specular materials set Scattered and leave PDF nil; diffuse materials
// provide a PDF for the integrator to sample instead.
type ScatterResult struct {
	Attenuation Color
	Scattered   Ray
	PDF         PDF
}

// IsSpecular reports whether the scatter is a deterministic ray rather
// than a sampled distribution
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Material describes how a surface scatters incident light
type Material interface {
	// Scatter returns the scattering behavior at a hit, or false when
	// the material absorbs the ray or only emits
	Scatter(ctx *RenderContext, rayIn Ray, hit *HitRecord) (ScatterResult, bool)

	// ScatteringPDF returns the density of the material scattering
	// rayIn into scattered, used by the importance-sampling estimator
	ScatteringPDF(ctx *RenderContext, rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit *HitRecord) Color
}

// Texture maps surface coordinates and a hit point to a color
type Texture interface {
	Value(u, v float64, p Vec3) Color
}

// PDF is a sampleable probability density over directions
type PDF interface {
	// Value returns the density for the given direction
	Value(ctx *RenderContext, direction Vec3) float64
	// Generate draws a direction from the distribution
	Generate(ctx *RenderContext) Vec3
}
