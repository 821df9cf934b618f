package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
)

// ThreeSpheres is the classic matte/glass/metal lineup over a ground
// sphere. The glass sphere contains an air bubble.
func ThreeSpheres(rnd core.Random) (*Scene, error) {
	ground := material.NewLambertianColor(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertianColor(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	metal := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0)

	world := object.NewGroup(
		object.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		object.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		object.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		object.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		object.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 16.0 / 9.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 90
	builder.LookFrom = core.NewVec3(0, 0, 0)
	builder.LookAt = core.NewVec3(0, 0, -1)
	builder.Background = core.NewColor(0.7, 0.8, 1.0)

	return &Scene{Camera: builder.Build(), World: world}, nil
}
