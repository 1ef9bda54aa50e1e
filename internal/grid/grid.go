package grid

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// Meta carries the read-only shape of a grid into rule evaluation.
type Meta struct {
	Width  int
	Height int
	States int
}

// Grid owns two same-shaped buffers and the index of the live one.
type Grid struct {
	width, height, states int

	mu      sync.RWMutex
	stepMu  sync.Mutex
	buffers [2]Buffer
	current int
}

// New allocates a grid of width*height cells with the given state count.
// Both buffers start zeroed.
func New(width, height, states int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	if states < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStates, states)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrAllocation, width, height)
	}

	g := &Grid{width: width, height: height, states: states}
	for i := range g.buffers {
		b, err := allocate(width, height)
		if err != nil {
			return nil, err
		}
		g.buffers[i] = b
	}
	return g, nil
}

func allocate(w, h int) (b Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return NewBuffer(w, h), nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) States() int { return g.states }

func (g *Grid) Meta() Meta {
	return Meta{Width: g.width, Height: g.height, States: g.states}
}

// CurrentBuffer returns the buffer holding the latest generation.
func (g *Grid) CurrentBuffer() Buffer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.buffers[g.current]
}

// NextBuffer returns the buffer the next step overwrites.
func (g *Grid) NextBuffer() Buffer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.buffers[1-g.current]
}

// Advance flips the current selector.
func (g *Grid) Advance() {
	g.mu.Lock()
	g.current = 1 - g.current
	g.mu.Unlock()
}

// Step runs fn with the current and next buffers and advances once fn returns.
// Calls are serialized so only one step is in flight per grid.
func (g *Grid) Step(fn func(cur, next Buffer)) {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()

	g.mu.RLock()
	cur, next := g.buffers[g.current], g.buffers[1-g.current]
	g.mu.RUnlock()

	fn(cur, next)
	g.Advance()
}

// Read calls fn with the current buffer while holding off any flip, so fn
// observes a single generation from start to end.
func (g *Grid) Read(fn func(Buffer)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.buffers[g.current])
}

// Copy returns a deep copy of the current buffer.
func (g *Grid) Copy() Buffer {
	var c Buffer
	g.Read(func(b Buffer) { c = b.Clone() })
	return c
}

// write calls fn with the current buffer under the write lock, excluding
// readers for the duration.
func (g *Grid) write(fn func(Buffer)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.buffers[g.current])
}

// Set writes a cell into the current buffer.
func (g *Grid) Set(x, y int, c Cell) {
	g.write(func(b Buffer) { b.Set(x, y, c) })
}

// Load copies src into the current buffer. Shapes must match.
func (g *Grid) Load(src Buffer) error {
	if src.Width() != g.width || src.Height() != g.height {
		return fmt.Errorf("%w: buffer %dx%d does not fit grid %dx%d",
			ErrDimensions, src.Width(), src.Height(), g.width, g.height)
	}
	g.write(func(b Buffer) { copy(b.cells, src.cells) })
	return nil
}

// Randomize fills the current buffer with uniformly drawn states.
func (g *Grid) Randomize(seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	g.write(func(b Buffer) {
		for i := range b.cells {
			b.cells[i] = Cell(rng.IntN(g.states))
		}
	})
}

// Destroy releases both buffers. The grid must not be used afterwards.
func (g *Grid) Destroy() {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buffers = [2]Buffer{}
	g.current = 0
}
