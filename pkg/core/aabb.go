package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// Minimum extent of any AABB axis. Zero-thickness slabs break the
// reciprocal slab test, so boxes are padded up to this on construction.
const minAxisExtent = 1e-4

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB with two points as extrema, in either order
func NewAABBFromPoints(a, b Vec3) AABB {
	aabb := AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromBoxes creates an AABB tightly bounding two boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(a.X, b.X),
		Y: NewIntervalFromIntervals(a.Y, b.Y),
		Z: NewIntervalFromIntervals(a.Z, b.Z),
	}
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < minAxisExtent {
		aabb.X = aabb.X.Expand(minAxisExtent)
	}
	if aabb.Y.Size() < minAxisExtent {
		aabb.Y = aabb.Y.Expand(minAxisExtent)
	}
	if aabb.Z.Size() < minAxisExtent {
		aabb.Z = aabb.Z.Expand(minAxisExtent)
	}
}

// AxisInterval returns the interval along the given axis
func (aabb AABB) AxisInterval(axis Axis) Interval {
	switch axis {
	case AxisX:
		return aabb.X
	case AxisY:
		return aabb.Y
	}
	return aabb.Z
}

// Hit tests if a ray intersects this AABB within rayT using the slab
// method. Division by a zero direction component yields ±Inf, which
// degenerates the slab to a pass/fail test on the origin.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := AxisX; axis <= AxisZ; axis++ {
		ax := aabb.AxisInterval(axis)
		invD := 1.0 / ray.Direction.Component(axis)
		origin := ray.Origin.Component(axis)

		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis with the largest extent.
// Ties resolve X over Z and Y over Z.
func (aabb AABB) LongestAxis() Axis {
	if aabb.X.Size() > aabb.Z.Size() {
		if aabb.X.Size() > aabb.Y.Size() {
			return AxisX
		}
		return AxisY
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return AxisY
	}
	return AxisZ
}

// Add returns the AABB translated by offset
func (aabb AABB) Add(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return Vec3{
		X: (aabb.X.Min + aabb.X.Max) / 2,
		Y: (aabb.Y.Min + aabb.Y.Max) / 2,
		Z: (aabb.Z.Min + aabb.Z.Max) / 2,
	}
}

// Corners returns the eight corner points of the AABB
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	i := 0
	for _, x := range [2]float64{aabb.X.Min, aabb.X.Max} {
		for _, y := range [2]float64{aabb.Y.Min, aabb.Y.Max} {
			for _, z := range [2]float64{aabb.Z.Min, aabb.Z.Max} {
				corners[i] = Vec3{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return corners
}
