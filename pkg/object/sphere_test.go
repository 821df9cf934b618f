package object

import (
	"math"
	"testing"

	"github.com/caustic-rt/caustic/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	ctx := testContext(1)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})

	tests := []struct {
		name      string
		ray       core.Ray
		wantHit   bool
		wantT     float64
		frontFace bool
	}{
		{
			name:      "head-on from outside reports near root",
			ray:       core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)),
			wantHit:   true,
			wantT:     2, // distance - radius
			frontFace: true,
		},
		{
			name:      "from inside reports far root and back face",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			wantHit:   true,
			wantT:     1,
			frontFace: false,
		},
		{
			name:    "aimed away misses",
			ray:     core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:    "offset parallel ray misses",
			ray:     core.NewRay(core.NewVec3(2, 0, 3), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(ctx, tt.ray, core.NewInterval(0.001, math.Inf(1)))
			if ok != tt.wantHit {
				t.Fatalf("Hit() = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", hit.T, tt.wantT)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("frontFace = %v, want %v", hit.FrontFace, tt.frontFace)
			}
		})
	}
}

func TestSphere_RootSelection(t *testing.T) {
	ctx := testContext(1)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	// Interval excluding the near root falls through to the far root
	hit, ok := sphere.Hit(ctx, ray, core.NewInterval(3, math.Inf(1)))
	if !ok {
		t.Fatal("Expected far-root hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", hit.T)
	}

	// Interval excluding both roots misses
	if _, ok := sphere.Hit(ctx, ray, core.NewInterval(5, math.Inf(1))); ok {
		t.Error("Expected miss when both roots are out of range")
	}
}

func TestSphere_UV(t *testing.T) {
	ctx := testContext(1)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})

	// Hit point (0,0,1): theta=pi/2, phi=pi/2
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	hit, ok := sphere.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit")
	}

	const tolerance = 1e-9
	if math.Abs(hit.U-0.25) > tolerance || math.Abs(hit.V-0.5) > tolerance {
		t.Errorf("UV = (%v, %v), want (0.25, 0.5)", hit.U, hit.V)
	}
}

func TestSphere_Motion(t *testing.T) {
	ctx := testContext(1)
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0.5, testMaterial{})

	// At shutter time 0.5 the center sits at (1,0,0)
	ray := core.NewRayAt(core.NewVec3(1, 0, 3), core.NewVec3(0, 0, -1), 0.5)
	hit, ok := sphere.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit at shutter time 0.5")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("t = %v, want 2.5", hit.T)
	}

	// At time 0 the same ray misses
	ray = core.NewRayAt(core.NewVec3(1, 0, 3), core.NewVec3(0, 0, -1), 0)
	if _, ok := sphere.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Error("Expected miss at shutter time 0")
	}

	// Bounding box spans both endpoints
	bbox := sphere.BoundingBox()
	if bbox.X.Min > -0.5 || bbox.X.Max < 2.5 {
		t.Errorf("Bounding box X = %+v, want to cover [-0.5, 2.5]", bbox.X)
	}
}

func TestSphere_PDF(t *testing.T) {
	ctx := testContext(3)
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{})
	origin := core.NewVec3(0, 0, 0)

	// Direction toward the sphere has the analytic cone density
	toward := core.NewVec3(0, 0, -1)
	got := sphere.PDFValue(ctx, origin, toward)

	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	want := 1 / (2 * math.Pi * (1 - cosThetaMax))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDFValue = %v, want %v", got, want)
	}

	// Direction away has zero density
	if got := sphere.PDFValue(ctx, origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("PDFValue away = %v, want 0", got)
	}

	// Sampled directions always hit the sphere
	for i := 0; i < 100; i++ {
		dir := sphere.RandomDirection(ctx, origin)
		ray := core.NewRay(origin, dir)
		if _, ok := sphere.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); !ok {
			t.Fatalf("Sampled direction %v misses the sphere", dir)
		}
	}
}
