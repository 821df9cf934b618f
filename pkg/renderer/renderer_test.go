package renderer

import (
	"sync"
	"testing"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
)

// missWorld hits nothing, so every pixel is the camera background
type missWorld struct{}

func (missWorld) Hit(ctx *core.RenderContext, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return nil, false
}

func (missWorld) BoundingBox() core.AABB {
	return core.NewAABB(core.EmptyInterval, core.EmptyInterval, core.EmptyInterval)
}

func (missWorld) PDFValue(ctx *core.RenderContext, origin, direction core.Vec3) float64 {
	return 0
}

func (missWorld) RandomDirection(ctx *core.RenderContext, origin core.Vec3) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

func TestMakeTiles_CoversImageExactlyOnce(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
	}{
		{"exact multiple", 40, 20, 10},
		{"ragged edges", 23, 17, 10},
		{"single tile", 5, 5, 10},
		{"one pixel", 1, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := makeTiles(tt.width, tt.height, tt.tileSize)

			covered := make(map[[2]int]int)
			for _, tile := range tiles {
				if tile.Width() <= 0 || tile.Height() <= 0 {
					t.Fatalf("Degenerate tile %+v", tile)
				}
				if tile.Width() > tt.tileSize || tile.Height() > tt.tileSize {
					t.Fatalf("Oversized tile %+v", tile)
				}
				for y := tile.Y0; y < tile.Y1; y++ {
					for x := tile.X0; x < tile.X1; x++ {
						covered[[2]int{x, y}]++
					}
				}
			}

			if len(covered) != tt.width*tt.height {
				t.Fatalf("Covered %d pixels, want %d", len(covered), tt.width*tt.height)
			}
			for px, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %v covered %d times", px, n)
				}
			}
		})
	}
}

func TestTileQueue_PopDrains(t *testing.T) {
	queue := &tileQueue{tiles: makeTiles(23, 17, 10)}
	want := len(queue.tiles)

	popped := 0
	for {
		if _, ok := queue.pop(); !ok {
			break
		}
		popped++
	}
	if popped != want {
		t.Errorf("Popped %d tiles, want %d", popped, want)
	}
	if _, ok := queue.pop(); ok {
		t.Error("Empty queue must report no work")
	}
}

func testCamera(width int, spp int) *camera.Camera {
	builder := camera.NewCameraBuilder()
	builder.ImageWidth = width
	builder.AspectRatio = 1
	builder.SamplesPerPixel = spp
	builder.Background = core.NewColor(0.25, 0.25, 0.25)
	return builder.Build()
}

func TestRender_FillsEveryPixel(t *testing.T) {
	for _, workers := range []int{1, 3} {
		cam := testCamera(23, 1)
		r := NewRenderer(cam, missWorld{}, nil)
		r.Workers = workers
		r.TileSize = 10

		img := r.Render(core.NewRenderContext(core.NewSeededRandom(1)))

		bounds := img.Bounds()
		if bounds.Dx() != 23 || bounds.Dy() != 23 {
			t.Fatalf("Image bounds %v, want 23x23", bounds)
		}

		// Linear 0.25 background is gamma 0.5, truncated to byte 127
		for y := 0; y < 23; y++ {
			for x := 0; x < 23; x++ {
				px := img.RGBAAt(x, y)
				if px.R != 127 || px.G != 127 || px.B != 127 {
					t.Fatalf("Pixel (%d,%d) = %v, want uniform background (workers=%d)", x, y, px, workers)
				}
				if px.A != 255 {
					t.Fatalf("Pixel (%d,%d) alpha = %d, want 255", x, y, px.A)
				}
			}
		}
	}
}

func TestRender_ProgressReportsEveryTile(t *testing.T) {
	cam := testCamera(23, 1)
	r := NewRenderer(cam, missWorld{}, nil)
	r.Workers = 2
	r.TileSize = 10

	var mu sync.Mutex
	var reports [][2]int
	r.Progress = func(done, total int) {
		mu.Lock()
		reports = append(reports, [2]int{done, total})
		mu.Unlock()
	}

	r.Render(core.NewRenderContext(core.NewSeededRandom(1)))

	wantTotal := len(makeTiles(23, 23, 10))
	if len(reports) != wantTotal {
		t.Fatalf("Progress called %d times, want %d", len(reports), wantTotal)
	}
	for i, rep := range reports {
		if rep[0] != i+1 || rep[1] != wantTotal {
			t.Fatalf("Report %d = %v, want {%d, %d}", i, rep, i+1, wantTotal)
		}
	}
}

func TestRender_DefaultWorkerAndTileSizing(t *testing.T) {
	cam := testCamera(5, 1)
	r := NewRenderer(cam, missWorld{}, nil)

	// Zero Workers and TileSize fall back to defaults without deadlock
	img := r.Render(core.NewRenderContext(core.NewSeededRandom(1)))
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 5 {
		t.Fatalf("Image bounds %v, want 5x5", img.Bounds())
	}
}

func TestSetLogger_NilRestoresSilentDefault(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger must never be nil")
	}
	if Logger().Enabled(nil, 0) {
		t.Error("Default logger must be disabled")
	}
}
