package core

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the source of all stochastic draws during a render. One
// instance is shared by every worker, so implementations must be safe
// for concurrent use.
type Random interface {
	// Float returns a uniform draw from [0, 1)
	Float() float64
	// FloatInterval returns a uniform draw from [min, max)
	FloatInterval(min, max float64) float64
	// IntInterval returns a uniform integer draw from [min, max]
	IntInterval(min, max int) int
}

// RenderContext carries the per-render shared state threaded through
// every hit, scatter and sampling call. Scene data is read-only during
// a render; the context holds the only stateful collaborator, the RNG.
type RenderContext struct {
	Rand Random
}

// NewRenderContext creates a render context around a random source
func NewRenderContext(random Random) *RenderContext {
	return &RenderContext{Rand: random}
}

// lockedRandom wraps a math/rand generator behind a mutex so concurrent
// workers can share one stream.
type lockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a thread-safe random source seeded from the clock
func NewRandom() Random {
	return NewSeededRandom(time.Now().UnixNano())
}

// NewSeededRandom creates a thread-safe random source with a fixed seed
func NewSeededRandom(seed int64) Random {
	return &lockedRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandom) Float() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *lockedRandom) FloatInterval(min, max float64) float64 {
	return min + (max-min)*r.Float()
}

func (r *lockedRandom) IntInterval(min, max int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}
