package scene

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
)

// CornellSmoke is the Cornell box with the boxes replaced by volumes
// of dark smoke and white fog
func CornellSmoke(rnd core.Random) (*Scene, error) {
	red := material.NewLambertianColor(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewColor(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewColor(0.12, 0.45, 0.15))
	lamp := material.NewDiffuseLightColor(core.NewColor(7, 7, 7))

	world := object.NewGroup(
		object.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		object.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		object.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), lamp),
		object.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		object.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		object.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	tall := object.NewTranslate(
		object.NewRotateY(
			object.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15*math.Pi/180),
		core.NewVec3(265, 0, 295))
	short := object.NewTranslate(
		object.NewRotateY(
			object.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18*math.Pi/180),
		core.NewVec3(130, 0, 65))

	world.Add(object.NewConstantMedium(tall, 0.01, material.NewIsotropicColor(core.Black)))
	world.Add(object.NewConstantMedium(short, 0.01, material.NewIsotropicColor(core.White)))

	lights := object.NewGroup(
		object.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), material.NewEmpty()),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 1.0
	builder.ImageWidth = 600
	builder.SamplesPerPixel = 200
	builder.MaxDepth = 50
	builder.VerticalFOV = 40
	builder.LookFrom = core.NewVec3(278, 278, -800)
	builder.LookAt = core.NewVec3(278, 278, 0)
	builder.Background = core.Black

	return &Scene{Camera: builder.Build(), World: world, Lights: lights}, nil
}
