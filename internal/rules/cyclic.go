package rules

import "github.com/san-kum/automaton/internal/grid"

// Cyclic advances a cell to its successor state when any neighbor already
// holds that successor.
type Cyclic struct{}

func (Cyclic) Name() string { return "cyclic" }

func (Cyclic) Next(x, y int, read grid.Buffer, meta grid.Meta) grid.Cell {
	s := read.At(x, y)
	if grid.HasSuccessorNeighbor(x, y, read, meta.States) {
		return (s + 1) % grid.Cell(meta.States)
	}
	return s
}
