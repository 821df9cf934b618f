package core

import "math"

// RandomUnitVector generates a uniformly distributed unit vector by
// rejection sampling the unit ball. The lower bound on the squared
// length rejects points so close to the origin that normalizing them
// would blow up.
func RandomUnitVector(rnd Random) Vec3 {
	for {
		p := NewVec3(
			rnd.FloatInterval(-1, 1),
			rnd.FloatInterval(-1, 1),
			rnd.FloatInterval(-1, 1),
		)
		lenSq := p.LengthSquared()
		if 1e-160 < lenSq && lenSq <= 1.0 {
			return p.Divide(math.Sqrt(lenSq))
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY
// plane, used for defocus blur
func RandomInUnitDisk(rnd Random) Vec3 {
	for {
		p := NewVec3(rnd.FloatInterval(-1, 1), rnd.FloatInterval(-1, 1), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomCosineDirection generates a cosine-weighted direction in the
// hemisphere around +Z, in local coordinates
func RandomCosineDirection(rnd Random) Vec3 {
	r1 := rnd.Float()
	r2 := rnd.Float()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return NewVec3(x, y, z)
}
