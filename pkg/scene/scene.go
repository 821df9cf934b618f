package scene

import (
	"fmt"
	"sort"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
)

// Scene bundles everything the renderer needs: the built camera, the
// world root, and an optional node for light importance sampling
type Scene struct {
	Camera *camera.Camera
	World  core.Node
	Lights core.Node
}

// Builder constructs a scene. Builders that use procedural noise or
// random placement draw from rnd, so a seeded source reproduces the
// same scene.
type Builder func(rnd core.Random) (*Scene, error)

var builders = map[string]Builder{
	"three-spheres":     ThreeSpheres,
	"checkered-spheres": CheckeredSpheres,
	"perlin-spheres":    PerlinSpheres,
	"quads":             Quads,
	"lighted-frustum":   LightedFrustum,
	"cornell-box":       CornellBox,
	"cornell-smoke":     CornellSmoke,
	"random-spheres":    RandomSpheres,
	"earth":             Earth,
	"final":             Final,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds the named scene
func Load(name string, rnd core.Random) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(rnd)
}
