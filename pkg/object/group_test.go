package object

import (
	"math"
	"testing"

	"github.com/caustic-rt/caustic/pkg/core"
)

func TestGroup_ClosestHit(t *testing.T) {
	ctx := testContext(1)
	group := NewGroup(
		NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial{}),
		NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial{}),
		NewSphere(core.NewVec3(0, 0, -6), 1, testMaterial{}),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := group.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("t = %v, want 2 (closest sphere)", hit.T)
	}
}

func TestGroup_PDFIsMeanOfChildren(t *testing.T) {
	ctx := testContext(2)
	origin := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 0, -1)

	near := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{})
	// Off-axis sphere contributes zero for this direction
	side := NewSphere(core.NewVec3(50, 0, 0), 1, testMaterial{})

	group := NewGroup(near, side)
	want := (near.PDFValue(ctx, origin, direction) + 0) / 2
	got := group.PDFValue(ctx, origin, direction)

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDFValue = %v, want %v", got, want)
	}
}

func TestGroup_Empty(t *testing.T) {
	ctx := testContext(1)
	group := NewGroup()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := group.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Error("Empty group must not hit")
	}
	if group.PDFValue(ctx, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)) != 0 {
		t.Error("Empty group pdf must be 0")
	}
}

func TestGroup_RandomDirectionDelegates(t *testing.T) {
	ctx := testContext(3)
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{})
	group := NewGroup(sphere)
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 50; i++ {
		dir := group.RandomDirection(ctx, origin)
		ray := core.NewRay(origin, dir)
		if _, ok := sphere.Hit(ctx, ray, core.NewInterval(0.001, math.Inf(1))); !ok {
			t.Fatalf("Sampled direction %v misses the only child", dir)
		}
	}
}
