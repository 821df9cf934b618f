package texture

import (
	"math"

	"github.com/caustic-rt/caustic/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise source: a fixed table of random unit
// vectors indexed through three permuted coordinate hashes
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a noise source from the given random stream
func NewPerlin(rnd core.Random) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.randVec[i] = core.RandomUnitVector(rnd)
	}
	generatePerm(rnd, &p.permX)
	generatePerm(rnd, &p.permY)
	generatePerm(rnd, &p.permZ)
	return p
}

func generatePerm(rnd core.Random, perm *[perlinPointCount]int) {
	for i := 0; i < perlinPointCount; i++ {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := rnd.IntInterval(0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise in [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// perlinInterp does trilinear interpolation of the gradient dot
// products with Hermitian smoothing of the weights
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums octaves of noise with halving weight and doubling
// frequency, returning the absolute value
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	temp := point

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
