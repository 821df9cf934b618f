package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// CheckeredSpheres is two giant touching spheres sharing a checker texture
func CheckeredSpheres(rnd core.Random) (*Scene, error) {
	checker := texture.NewCheckerColors(0.32,
		core.NewColor(0.2, 0.3, 0.1),
		core.NewColor(0.9, 0.9, 0.9))
	mat := material.NewLambertian(checker)

	world := object.NewGroup(
		object.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
		object.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 16.0 / 9.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 20
	builder.LookFrom = core.NewVec3(13, 2, 3)
	builder.LookAt = core.NewVec3(0, 0, 0)
	builder.Background = core.NewColor(0.7, 0.8, 1.0)

	return &Scene{Camera: builder.Build(), World: world}, nil
}
