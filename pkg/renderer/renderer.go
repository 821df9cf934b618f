package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/caustic-rt/caustic/pkg/camera"
	"github.com/caustic-rt/caustic/pkg/core"
)

// DefaultTileSize is the edge length of the square work tiles
const DefaultTileSize = 10

// Tile is a rectangular pixel region, with X1/Y1 exclusive
type Tile struct {
	X0, X1, Y0, Y1 int
}

// Width returns the tile width in pixels
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile height in pixels
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// TileResult carries the rendered pixels of one tile back to the
// compositor, in row-major order
type TileResult struct {
	Tile   Tile
	Pixels []core.Color
}

// tileQueue is the shared work pool. Workers pop from the end, so
// tiles are handed out in LIFO order.
type tileQueue struct {
	mu    sync.Mutex
	tiles []Tile
}

func (q *tileQueue) pop() (Tile, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tiles) == 0 {
		return Tile{}, false
	}
	tile := q.tiles[len(q.tiles)-1]
	q.tiles = q.tiles[:len(q.tiles)-1]
	return tile, true
}

// Renderer drives a full-image render: it tiles the image, fans the
// tiles out to a fixed pool of workers, and composites the results.
type Renderer struct {
	Camera *camera.Camera
	World  core.Node
	Lights core.Node // nil disables light importance sampling

	// Workers is the goroutine pool size; 0 means runtime.NumCPU()
	Workers int
	// TileSize overrides DefaultTileSize when positive
	TileSize int
	// Progress, when set, is called from the compositor after each
	// tile lands. Advisory only.
	Progress func(done, total int)
}

// NewRenderer creates a renderer with default pool and tile sizing
func NewRenderer(cam *camera.Camera, world, lights core.Node) *Renderer {
	return &Renderer{Camera: cam, World: world, Lights: lights}
}

// Render renders the full image. It blocks until every tile has been
// rendered and composited, then joins all workers.
func (r *Renderer) Render(ctx *core.RenderContext) *image.RGBA {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tileSize := r.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	width, height := r.Camera.ImageWidth, r.Camera.ImageHeight
	queue := &tileQueue{tiles: makeTiles(width, height, tileSize)}
	total := len(queue.tiles)
	results := make(chan TileResult, total)

	Logger().Info("render start",
		"width", width, "height", height,
		"tiles", total, "workers", workers,
		"samples", r.Camera.SamplesPerPixel())
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r.work(ctx, id, queue, results)
		}(i)
	}

	// Compositor: drain exactly one result per tile. Tiles cover
	// disjoint pixel rects, so completion order does not matter.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for done := 1; done <= total; done++ {
		res := <-results
		writeTile(img, res)
		Logger().Debug("tile composited", "tile", res.Tile, "done", done, "total", total)
		if r.Progress != nil {
			r.Progress(done, total)
		}
	}

	wg.Wait()
	Logger().Info("render complete", "elapsed", time.Since(start))
	return img
}

func (r *Renderer) work(ctx *core.RenderContext, id int, queue *tileQueue, results chan<- TileResult) {
	for {
		tile, ok := queue.pop()
		if !ok {
			Logger().Debug("worker done", "worker", id)
			return
		}
		results <- r.renderTile(ctx, tile)
	}
}

// renderTile renders one tile's pixels sequentially in row-major order
func (r *Renderer) renderTile(ctx *core.RenderContext, tile Tile) TileResult {
	pixels := make([]core.Color, 0, tile.Width()*tile.Height())
	for y := tile.Y0; y < tile.Y1; y++ {
		for x := tile.X0; x < tile.X1; x++ {
			pixels = append(pixels, r.Camera.Render(ctx, x, y, r.World, r.Lights))
		}
	}
	return TileResult{Tile: tile, Pixels: pixels}
}

// makeTiles partitions the image into tileSize squares, clipped at the
// right and bottom edges
func makeTiles(width, height, tileSize int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				X0: x,
				X1: min(x+tileSize, width),
				Y0: y,
				Y1: min(y+tileSize, height),
			})
		}
	}
	return tiles
}

// writeTile composites one tile into the image. Channel values arrive
// gamma corrected in [0, 0.999], so the 255.999 scale truncates to the
// full 0..255 range without overflow.
func writeTile(img *image.RGBA, res TileResult) {
	i := 0
	for y := res.Tile.Y0; y < res.Tile.Y1; y++ {
		for x := res.Tile.X0; x < res.Tile.X1; x++ {
			c := res.Pixels[i]
			i++
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
}
