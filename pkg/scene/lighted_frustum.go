package scene

import (
	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/material"
	"github.com/caustic-rt/caustic/pkg/object"
	"github.com/caustic-rt/caustic/pkg/texture"
)

// LightedFrustum is a frustum on a marble ground, lit by a quad panel
// and a glowing sphere against a black background. Both emitters are
// importance sampled.
func LightedFrustum(rnd core.Random) (*Scene, error) {
	marble := material.NewLambertian(texture.NewNoise(rnd, 4))
	matte := material.NewLambertianColor(core.NewColor(0.73, 0.45, 0.2))
	lamp := material.NewDiffuseLightColor(core.NewColor(4, 4, 4))

	panel := object.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), lamp)
	glow := object.NewSphere(core.NewVec3(0, 7, 0), 2, lamp)

	world := object.NewGroup(
		object.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		object.NewFrustum(core.NewVec3(0, 0, 0), 2.5, 1.5, 0.6, matte),
		panel,
		glow,
	)

	// Shared nodes: the same emitters appear in world and lights
	lights := object.NewGroup(panel, glow)

	builder := camera.NewCameraBuilder()
	builder.AspectRatio = 16.0 / 9.0
	builder.ImageWidth = 400
	builder.SamplesPerPixel = 100
	builder.MaxDepth = 50
	builder.VerticalFOV = 20
	builder.LookFrom = core.NewVec3(26, 3, 6)
	builder.LookAt = core.NewVec3(0, 2, 0)
	builder.Background = core.Black

	return &Scene{Camera: builder.Build(), World: world, Lights: lights}, nil
}
