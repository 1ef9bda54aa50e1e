package engine

import (
	"sync/atomic"

	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/rules"
)

// minRows keeps tiny grids on a single goroutine.
const minRows = 8

// Stepper applies a rule across a grid, optionally in parallel row bands.
type Stepper struct {
	Workers int
}

// New returns a Stepper using the given number of workers. Values below one
// mean sequential.
func New(workers int) *Stepper {
	if workers < 1 {
		workers = 1
	}
	return &Stepper{Workers: workers}
}

// Step computes the next generation of g and flips its buffers. It returns
// the number of cells whose state changed.
func Step(g *grid.Grid, rule rules.Rule) int {
	return (&Stepper{Workers: 1}).Step(g, rule)
}

// Step computes the next generation of g and flips its buffers. It returns
// the number of cells whose state changed.
func (s *Stepper) Step(g *grid.Grid, rule rules.Rule) int {
	meta := g.Meta()
	var changed atomic.Int64

	g.Step(func(cur, next grid.Buffer) {
		ParallelFor(meta.Height, s.Workers, minRows, func(y0, y1 int) {
			n := stepRows(cur, next, rule, meta, y0, y1)
			changed.Add(int64(n))
		})
	})

	return int(changed.Load())
}

func stepRows(cur, next grid.Buffer, rule rules.Rule, meta grid.Meta, y0, y1 int) int {
	changed := 0
	in, out := cur.Cells(), next.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < meta.Width; x++ {
			idx := y*meta.Width + x
			v := rule.Next(x, y, cur, meta)
			out[idx] = v
			if v != in[idx] {
				changed++
			}
		}
	}
	return changed
}
