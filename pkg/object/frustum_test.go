package object

import (
	"math"
	"testing"

	"github.com/caustic-rt/caustic/pkg/core"
)

func TestFrustum_CylinderWall(t *testing.T) {
	ctx := testContext(1)
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 2, 1, testMaterial{})

	ray := core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-1, 0, 0))
	hit, ok := cylinder.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected wall hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("t = %v, want 2", hit.T)
	}

	wantNormal := core.NewVec3(1, 0, 0)
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}
}

func TestFrustum_ConeWallRadiusInterpolates(t *testing.T) {
	ctx := testContext(1)
	cone := NewCone(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})

	// Halfway up, the cone radius is 0.5
	ray := core.NewRay(core.NewVec3(3, 0.5, 0), core.NewVec3(-1, 0, 0))
	hit, ok := cone.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected wall hit")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("t = %v, want 2.5", hit.T)
	}
}

func TestFrustum_Caps(t *testing.T) {
	ctx := testContext(1)
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 2, 1, testMaterial{})

	// Straight down onto the top cap
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, ok := cylinder.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected top cap hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("t = %v, want 3", hit.T)
	}

	// Straight up through the base cap
	ray = core.NewRay(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0))
	hit, ok = cylinder.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected base cap hit")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("t = %v, want 5", hit.T)
	}
}

func TestFrustum_ConeApexHasNoCap(t *testing.T) {
	ctx := testContext(1)
	cone := NewCone(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})

	// Down through the apex: the only surfaces are the wall (grazed at
	// a single point) and the base cap at y=0
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, ok := cone.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected base cap hit through the apex")
	}
	if math.Abs(hit.T-5) > 1e-6 && math.Abs(hit.T-4) > 1e-6 {
		t.Errorf("t = %v, want apex (4) or base (5)", hit.T)
	}
}

func TestFrustum_WallOutsideHeightMisses(t *testing.T) {
	ctx := testContext(1)
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 2, 1, testMaterial{})

	ray := core.NewRay(core.NewVec3(3, 5, 0), core.NewVec3(-1, 0, 0))
	if _, ok := cylinder.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Error("Ray above the frustum must miss")
	}
}

func TestFrustum_WallSampling(t *testing.T) {
	ctx := testContext(4)
	wall := newFrustumWall(core.NewVec3(0, 0, 0), 2, 1.5, 0.5, testMaterial{})
	origin := core.NewVec3(10, 1, 0)

	// Sampled directions land on the wall, and the pdf there is positive
	for i := 0; i < 100; i++ {
		dir := wall.RandomDirection(ctx, origin)
		ray := core.NewRay(origin, dir)
		if _, ok := wall.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); !ok {
			t.Fatalf("Sampled direction %v misses the wall", dir)
		}
		if wall.PDFValue(ctx, origin, dir) <= 0 {
			t.Fatalf("Expected positive pdf for sampled direction %v", dir)
		}
	}
}

func TestFrustum_LateralArea(t *testing.T) {
	// Cylinder lateral area is 2*pi*r*h
	wall := newFrustumWall(core.NewVec3(0, 0, 0), 2, 1, 1, testMaterial{})
	want := 2 * math.Pi * 1 * 2
	if math.Abs(wall.area-want) > 1e-9 {
		t.Errorf("area = %v, want %v", wall.area, want)
	}

	// Cone lateral area is pi*r*slant
	wall = newFrustumWall(core.NewVec3(0, 0, 0), 4, 3, 0, testMaterial{})
	want = math.Pi * 3 * 5
	if math.Abs(wall.area-want) > 1e-9 {
		t.Errorf("area = %v, want %v", wall.area, want)
	}
}
