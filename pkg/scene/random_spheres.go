package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// RandomSpheres is a field of small random spheres around three large
// ones, with depth of field and motion blur on the bouncing diffuse
// spheres. The field is wrapped in a BVH.
func RandomSpheres(rnd core.Random) (*Scene, error) {
	var objects []core.Node

	checker := texture.NewCheckerColors(0.32,
		core.NewColor(0.2, 0.3, 0.1),
		core.NewColor(0.9, 0.9, 0.9))
	objects = append(objects,
		object.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*rnd.Float(),
				0.2,
				float64(b)+0.9*rnd.Float())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := rnd.Float()
			switch {
			case chooseMat < 0.8:
				albedo := core.NewColor(rnd.Float()*rnd.Float(), rnd.Float()*rnd.Float(), rnd.Float()*rnd.Float())
				center2 := center.Add(core.NewVec3(0, rnd.FloatInterval(0, 0.5), 0))
				objects = append(objects,
					object.NewMovingSphere(center, center2, 0.2, material.NewLambertianColor(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewColor(
					rnd.FloatInterval(0.5, 1),
					rnd.FloatInterval(0.5, 1),
					rnd.FloatInterval(0.5, 1))
				fuzz := rnd.FloatInterval(0, 0.5)
				objects = append(objects,
					object.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects,
					object.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		object.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		object.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertianColor(core.NewColor(0.4, 0.2, 0.1))),
		object.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)),
	)

	world := object.NewBVH(objects)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 16.0 / 9.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 20
	builder.LookFrom = core.NewVec3(13, 2, 3)
	builder.LookAt = core.NewVec3(0, 0, 0)
	builder.DefocusAngle = 0.6
	builder.FocusDistance = 10
	builder.Background = core.NewColor(0.7, 0.8, 1.0)

	return &Scene{Camera: builder.Build(), World: world}, nil
}
