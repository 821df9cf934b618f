package core

import (
	"math"
	"testing"
)

func TestMatrix3_Rotation(t *testing.T) {
	tests := []struct {
		name     string
		axis     Vec3
		angle    float64
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "90 degrees about Z",
			axis:     NewVec3(0, 0, 1),
			angle:    math.Pi / 2,
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degrees about Y",
			axis:     NewVec3(0, 1, 0),
			angle:    math.Pi / 2,
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "180 degrees about X",
			axis:     NewVec3(1, 0, 0),
			angle:    math.Pi,
			vector:   NewVec3(0, 1, 0),
			expected: NewVec3(0, -1, 0),
		},
		{
			name:     "rotation about diagonal axis keeps axis fixed",
			axis:     NewVec3(1, 1, 1),
			angle:    2.1,
			vector:   NewVec3(1, 1, 1),
			expected: NewVec3(1, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRotationMatrix(tt.axis, tt.angle)
			result := m.MultiplyVec(tt.vector)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestMatrix3_TransposeInvertsRotation(t *testing.T) {
	m := NewRotationMatrix(NewVec3(0.3, -1, 0.5), 1.234)
	inv := m.Transpose()

	v := NewVec3(1, 2, 3)
	roundTrip := inv.MultiplyVec(m.MultiplyVec(v))

	const tolerance = 1e-9
	if roundTrip.Subtract(v).Length() > tolerance {
		t.Errorf("Expected %v after round trip, got %v", v, roundTrip)
	}
}

func TestONB_TransformPreservesLength(t *testing.T) {
	basis := NewONB(NewVec3(1, 2, -1))
	v := NewVec3(0.5, -0.25, 2)
	transformed := basis.Transform(v)

	const tolerance = 1e-9
	if math.Abs(transformed.Length()-v.Length()) > tolerance {
		t.Errorf("Length changed from %v to %v", v.Length(), transformed.Length())
	}

	// Local +Z maps onto the normal direction
	up := basis.Transform(NewVec3(0, 0, 1))
	normal := NewVec3(1, 2, -1).Normalize()
	if up.Subtract(normal).Length() > tolerance {
		t.Errorf("Expected %v, got %v", normal, up)
	}
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	rnd := NewSeededRandom(42)
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(rnd)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %v", v.Length())
		}
	}
}

func TestRandomCosineDirection_Hemisphere(t *testing.T) {
	rnd := NewSeededRandom(7)
	for i := 0; i < 100; i++ {
		v := RandomCosineDirection(rnd)
		if v.Z < 0 {
			t.Fatalf("Expected direction in upper hemisphere, got %v", v)
		}
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %v", v.Length())
		}
	}
}
