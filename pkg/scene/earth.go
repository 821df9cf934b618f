package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// earthMapPath is resolved relative to the working directory
const earthMapPath = "assets/earth-map.jpg"

// maxTextureDim bounds decoded texture resolution
const maxTextureDim = 2048

// Earth is a globe wrapped in an equirectangular earth map
func Earth(rnd core.Random) (*Scene, error) {
	earthMap, err := texture.LoadImageTexture(earthMapPath, maxTextureDim)
	if err != nil {
		return nil, err
	}

	world := object.NewGroup(
		object.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(earthMap)),
	)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 16.0 / 9.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 20
	builder.LookFrom = core.NewVec3(0, 0, 12)
	builder.LookAt = core.NewVec3(0, 0, 0)
	builder.Background = core.NewColor(0.7, 0.8, 1.0)

	return &Scene{Camera: builder.Build(), World: world}, nil
}
