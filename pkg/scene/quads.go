package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
)

// Quads is five colored parallelograms facing the camera
func Quads(rnd core.Random) (*Scene, error) {
	red := material.NewLambertianColor(core.NewColor(1.0, 0.2, 0.2))
	green := material.NewLambertianColor(core.NewColor(0.2, 1.0, 0.2))
	blue := material.NewLambertianColor(core.NewColor(0.2, 0.2, 1.0))
	orange := material.NewLambertianColor(core.NewColor(1.0, 0.5, 0.0))
	teal := material.NewLambertianColor(core.NewColor(0.2, 0.8, 0.8))

	world := object.NewGroup(
		object.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), red),
		object.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), green),
		object.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), blue),
		object.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), orange),
		object.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), teal),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 1.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 80
	builder.LookFrom = core.NewVec3(0, 0, 9)
	builder.LookAt = core.NewVec3(0, 0, 0)
	builder.Background = core.NewColor(0.7, 0.8, 1.0)

	return &Scene{Camera: builder.Build(), World: world}, nil
}
