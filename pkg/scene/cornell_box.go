package scene

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
)

// CornellBox is the standard Cornell box: white walls, red and green
// side walls, a ceiling lamp, and two rotated boxes
func CornellBox(rnd core.Random) (*Scene, error) {
	red := material.NewLambertianColor(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewColor(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewColor(0.12, 0.45, 0.15))
	lamp := material.NewDiffuseLightColor(core.NewColor(15, 15, 15))

	world := object.NewGroup(
		object.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		object.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		object.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), lamp),
		object.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		object.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		object.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	tall := object.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	world.Add(object.NewTranslate(
		object.NewRotateY(tall, 15*math.Pi/180),
		core.NewVec3(265, 0, 295)))

	short := object.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	world.Add(object.NewTranslate(
		object.NewRotateY(short, -18*math.Pi/180),
		core.NewVec3(130, 0, 65)))

	// Light-sampling proxy: same lamp geometry, inert material
	lights := object.NewGroup(
		object.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), material.NewEmpty()),
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
