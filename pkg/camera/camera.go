package camera

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// CameraBuilder collects lens and framing parameters. Zero values are
// replaced by the defaults from NewCameraBuilder; call Build to derive
// the immutable Camera.
type CameraBuilder struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	VerticalFOV     float64 // degrees
	LookFrom        core.Vec3
	LookAt          core.Vec3
	Up              core.Vec3
	DefocusAngle    float64 // degrees; 0 disables depth of field
	FocusDistance   float64
	Background      core.Color
}

// NewCameraBuilder returns a builder with usable defaults
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      600,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VerticalFOV:     90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
		Background:      core.NewColor(0.7, 0.8, 1.0),
	}
}

// Camera is the immutable render-ready projection derived from a
// builder. It is shared read-only across all worker goroutines.
type Camera struct {
	ImageWidth  int
	ImageHeight int

	center            core.Vec3
	pixel00Loc        core.Vec3
	pixelDeltaU       core.Vec3
	pixelDeltaV       core.Vec3
	defocusAngle      float64
	defocusDiskU      core.Vec3
	defocusDiskV      core.Vec3
	background        core.Color
	maxDepth          int
	sqrtSpp           int
	recipSqrtSpp      float64
	pixelSamplesScale float64
}

// Build derives the camera basis, viewport and sampling parameters.
// The stratification grid side is floor(sqrt(samples)), so sample
// counts that are not perfect squares render floor(sqrt(n))^2
// effective samples.
func (b *CameraBuilder) Build() *Camera {
	imageHeight := int(float64(b.ImageWidth) / b.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	sqrtSpp := int(math.Sqrt(float64(b.SamplesPerPixel)))
	if sqrtSpp < 1 {
		sqrtSpp = 1
	}

	center := b.LookFrom

	theta := b.VerticalFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * b.FocusDistance
	viewportWidth := viewportHeight * float64(b.ImageWidth) / float64(imageHeight)

	w := b.LookFrom.Subtract(b.LookAt).Normalize()
	u := b.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(b.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(b.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := b.FocusDistance * math.Tan(b.DefocusAngle/2*math.Pi/180)

	return &Camera{
		ImageWidth:        b.ImageWidth,
		ImageHeight:       imageHeight,
		center:            center,
		pixel00Loc:        pixel00Loc,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		defocusAngle:      b.DefocusAngle,
		defocusDiskU:      u.Multiply(defocusRadius),
		defocusDiskV:      v.Multiply(defocusRadius),
		background:        b.Background,
		maxDepth:          b.MaxDepth,
		sqrtSpp:           sqrtSpp,
		recipSqrtSpp:      1 / float64(sqrtSpp),
		pixelSamplesScale: 1 / float64(sqrtSpp*sqrtSpp),
	}
}

// SamplesPerPixel returns the effective sample count per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.sqrtSpp * c.sqrtSpp
}

// Render computes the final gamma-corrected color of one pixel by
// averaging stratified samples. lights may be nil when the scene has no
// importance-sampled lights.
func (c *Camera) Render(ctx *core.RenderContext, x, y int, world, lights core.Node) core.Color {
	color := core.Black
	for sj := 0; sj < c.sqrtSpp; sj++ {
		for si := 0; si < c.sqrtSpp; si++ {
			ray := c.ray(ctx, x, y, si, sj)
			color = color.Add(c.rayColor(ctx, ray, c.maxDepth, world, lights))
		}
	}

	return color.Multiply(c.pixelSamplesScale).NaNToZero().LinearToGamma()
}

// ray builds a primary ray through a jittered point in stratum (si,sj)
// of pixel (x,y), with defocus-disk origin jitter and a fresh shutter time
func (c *Camera) ray(ctx *core.RenderContext, x, y, si, sj int) core.Ray {
	offset := c.sampleSquareStratified(ctx.Rand, si, sj)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(x) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(y) + offset.Y))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(ctx.Rand)
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), ctx.Rand.Float())
}

// sampleSquareStratified jitters within one cell of the sub-pixel grid,
// centered on the pixel
func (c *Camera) sampleSquareStratified(rnd core.Random, si, sj int) core.Vec3 {
	px := (float64(si)+rnd.Float())*c.recipSqrtSpp - 0.5
	py := (float64(sj)+rnd.Float())*c.recipSqrtSpp - 0.5
	return core.NewVec3(px, py, 0)
}

func (c *Camera) defocusDiskSample(rnd core.Random) core.Vec3 {
	p := core.RandomInUnitDisk(rnd)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
