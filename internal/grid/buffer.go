package grid

// Cell holds a single state value in [0, states).
type Cell int

// Buffer is a row-major width*height block of cells.
type Buffer struct {
	w, h  int
	cells []Cell
}

// NewBuffer allocates a zeroed buffer. It panics on negative dimensions like make.
func NewBuffer(w, h int) Buffer {
	return Buffer{w: w, h: h, cells: make([]Cell, w*h)}
}

func (b Buffer) Width() int  { return b.w }
func (b Buffer) Height() int { return b.h }

// Cells exposes the backing slice so callers can read/write values directly.
func (b Buffer) Cells() []Cell { return b.cells }

// Index returns the linear slice index for coordinates (x, y).
func (b Buffer) Index(x, y int) int { return y*b.w + x }

// InBounds reports whether (x, y) lies inside the buffer.
func (b Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

func (b Buffer) At(x, y int) Cell { return b.cells[y*b.w+x] }

func (b Buffer) Set(x, y int, c Cell) { b.cells[y*b.w+x] = c }

// Clone returns a deep copy.
func (b Buffer) Clone() Buffer {
	c := Buffer{w: b.w, h: b.h, cells: make([]Cell, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both buffers have the same shape and contents.
func (b Buffer) Equal(o Buffer) bool {
	if b.w != o.w || b.h != o.h || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Histogram counts cells per state value. Values outside [0, states) are ignored.
func (b Buffer) Histogram(states int) []int {
	counts := make([]int, states)
	for _, c := range b.cells {
		if c >= 0 && int(c) < states {
			counts[c]++
		}
	}
	return counts
}
