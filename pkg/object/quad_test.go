package object

import (
	"math"
	"testing"

	"github.com/caustic-rt/caustic/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	ctx := testContext(1)
	// Unit quad in the XY plane at z=0
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial{})

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
	}{
		{
			name:    "through the interior",
			ray:     core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
		{
			name:    "through the corner region outside",
			ray:     core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "parallel to the plane",
			ray:     core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "hits exactly on the edge",
			ray:     core.NewRay(core.NewVec3(1, 0.5, 1), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := quad.Hit(ctx, tt.ray, core.NewInterval(0.001, math.Inf(1)))
			if ok != tt.wantHit {
				t.Errorf("Hit() = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestQuad_PlanarCoordinates(t *testing.T) {
	ctx := testContext(1)
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 4, 0), testMaterial{})

	ray := core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1))
	hit, ok := quad.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit")
	}

	const tolerance = 1e-9
	if math.Abs(hit.U-0.5) > tolerance || math.Abs(hit.V-0.25) > tolerance {
		t.Errorf("UV = (%v, %v), want (0.5, 0.25)", hit.U, hit.V)
	}
}

func TestQuad_PDF(t *testing.T) {
	ctx := testContext(2)
	// 2x2 quad at z=-3 facing the origin
	quad := NewQuad(core.NewVec3(-1, -1, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), testMaterial{})
	origin := core.NewVec3(0, 0, 0)

	// Straight-on direction: dist^2/(cos*area) = 9/(1*4)
	got := quad.PDFValue(ctx, origin, core.NewVec3(0, 0, -1))
	if math.Abs(got-2.25) > 1e-9 {
		t.Errorf("PDFValue = %v, want 2.25", got)
	}

	if got := quad.PDFValue(ctx, origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("PDFValue away = %v, want 0", got)
	}

	// Sampled directions land on the quad
	for i := 0; i < 100; i++ {
		dir := quad.RandomDirection(ctx, origin)
		ray := core.NewRay(origin, dir)
		if _, ok := quad.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); !ok {
			t.Fatalf("Sampled direction %v misses the quad", dir)
		}
	}
}

func TestBox_IsClosed(t *testing.T) {
	ctx := testContext(1)
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial{})

	// Rays from every axis direction hit a face
	center := core.NewVec3(0.5, 0.5, 0.5)
	origins := []core.Vec3{
		{X: 0.5, Y: 0.5, Z: 3}, {X: 0.5, Y: 0.5, Z: -3},
		{X: 0.5, Y: 3, Z: 0.5}, {X: 0.5, Y: -3, Z: 0.5},
		{X: 3, Y: 0.5, Z: 0.5}, {X: -3, Y: 0.5, Z: 0.5},
	}
	for _, origin := range origins {
		ray := core.NewRay(origin, center.Subtract(origin))
		hit, ok := box.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
		if !ok {
			t.Fatalf("Expected hit from %v", origin)
		}
		if !hit.FrontFace {
			t.Errorf("Expected front face from outside at %v", origin)
		}
	}
}
