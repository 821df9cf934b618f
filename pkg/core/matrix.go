package core

import "math"

// Axis identifies one of the three coordinate axes
type Axis int

// Coordinate axes
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Matrix3 is a 3x3 matrix in row-major order
type Matrix3 [3][3]float64

// IdentityMatrix returns the 3x3 identity matrix
func IdentityMatrix() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewRotationMatrix builds a rotation matrix for the given angle (radians)
// about an arbitrary axis, using Rodrigues' rotation formula
func NewRotationMatrix(axis Vec3, angle float64) Matrix3 {
	a := axis.Normalize()
	sinT := math.Sin(angle)
	cosT := math.Cos(angle)
	oneMinusCos := 1 - cosT

	return Matrix3{
		{
			cosT + a.X*a.X*oneMinusCos,
			a.X*a.Y*oneMinusCos - a.Z*sinT,
			a.X*a.Z*oneMinusCos + a.Y*sinT,
		},
		{
			a.Y*a.X*oneMinusCos + a.Z*sinT,
			cosT + a.Y*a.Y*oneMinusCos,
			a.Y*a.Z*oneMinusCos - a.X*sinT,
		},
		{
			a.Z*a.X*oneMinusCos - a.Y*sinT,
			a.Z*a.Y*oneMinusCos + a.X*sinT,
			cosT + a.Z*a.Z*oneMinusCos,
		},
	}
}

// NewScaleMatrix builds a diagonal scaling matrix
func NewScaleMatrix(factor Vec3) Matrix3 {
	return Matrix3{
		{factor.X, 0, 0},
		{0, factor.Y, 0},
		{0, 0, factor.Z},
	}
}

// Transpose returns the transposed matrix. For a pure rotation this is
// its inverse.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// MultiplyVec applies the matrix to a vector
func (m Matrix3) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
