package object

import "github.com/caustic-rt/caustic/pkg/core"

// testMaterial is an inert material for geometry tests
type testMaterial struct{}

func (testMaterial) Scatter(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (testMaterial) ScatteringPDF(ctx *core.RenderContext, rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func testContext(seed int64) *core.RenderContext {
	return core.NewRenderContext(core.NewSeededRandom(seed))
}
