package texture

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

// Noise is a marble-like procedural texture: a sine wave along Z phase
// shifted by turbulence
type Noise struct {
	noise *Perlin
	scale float64
}

// NewNoise creates a marble texture with the given feature scale
func NewNoise(rnd core.Random, scale float64) *Noise {
	return &Noise{noise: NewPerlin(rnd), scale: scale}
}

// Value returns a gray level in [0, 1]
func (n *Noise) Value(u, v float64, p core.Vec3) core.Color {
	gray := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewColor(gray, gray, gray)
}

// Turbulence is a cloudy procedural texture of raw accumulated noise
type Turbulence struct {
	noise *Perlin
	scale float64
	depth int
}

// NewTurbulence creates a turbulence texture with the given feature
// scale and octave count
func NewTurbulence(rnd core.Random, scale float64, depth int) *Turbulence {
	return &Turbulence{noise: NewPerlin(rnd), scale: scale, depth: depth}
}

// Value returns a gray level in [0, 1]
func (t *Turbulence) Value(u, v float64, p core.Vec3) core.Color {
	gray := t.noise.Turbulence(p.Multiply(t.scale), t.depth)
	return core.NewColor(gray, gray, gray)
}
