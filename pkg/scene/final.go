package scene

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// Final is the showcase scene: a ground of random-height boxes, a
// ceiling lamp, a moving sphere, glass and metal spheres, subsurface
// and marble spheres, a thin atmosphere, the earth globe, and a
// rotated cluster of a thousand small spheres
func Final(rnd core.Random) (*Scene, error) {
	var objects []core.Node

	// Ground: 20x20 grid of boxes with random heights
	ground := material.NewLambertianColor(core.NewColor(0.48, 0.83, 0.53))
	var groundBoxes []core.Node
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := rnd.FloatInterval(1, 101)
			groundBoxes = append(groundBoxes,
				object.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	objects = append(objects, object.NewBVH(groundBoxes))

	lamp := material.NewDiffuseLightColor(core.NewColor(7, 7, 7))
	objects = append(objects,
		object.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), lamp))

	// Motion-blurred diffuse sphere
	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects = append(objects,
		object.NewMovingSphere(center1, center2, 50, material.NewLambertianColor(core.NewColor(0.7, 0.3, 0.1))))

	objects = append(objects,
		object.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		object.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass sphere filled with blue mist
	boundary := object.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects,
		boundary,
		object.NewConstantMedium(boundary, 0.2, material.NewIsotropicColor(core.NewColor(0.2, 0.4, 0.9))))

	// Thin global atmosphere
	air := object.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects,
		object.NewConstantMedium(air, 0.0001, material.NewIsotropicColor(core.White)))

	earthMap, err := texture.LoadImageTexture(earthMapPath, maxTextureDim)
	if err != nil {
		return nil, err
	}
	objects = append(objects,
		object.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertian(earthMap)),
		object.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertian(texture.NewNoise(rnd, 0.2))),
	)

	// Cluster of small white spheres, rotated and lifted as a block
	white := material.NewLambertianColor(core.NewColor(0.73, 0.73, 0.73))
	var cluster []core.Node
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(
			rnd.FloatInterval(0, 165),
			rnd.FloatInterval(0, 165),
			rnd.FloatInterval(0, 165))
		cluster = append(cluster, object.NewSphere(center, 10, white))
	}
	objects = append(objects,
		object.NewTranslate(
			object.NewRotateY(object.NewBVH(cluster), 15*math.Pi/180),
			core.NewVec3(-100, 270, 395)))

	world := object.NewBVH(objects)

	lights := object.NewGroup(
		object.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), material.NewEmpty()),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 1.0
	builder.ImageWidth = 600
	builder.SamplesPerPixel = 250
	builder.MaxDepth = 40
	builder.VerticalFOV = 40
	builder.LookFrom = core.NewVec3(478, 278, -600)
	builder.LookAt = core.NewVec3(278, 278, 0)
	builder.Background = core.Black

	return &Scene{Camera: builder.Build(), World: world, Lights: lights}, nil
}
