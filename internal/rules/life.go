package rules

import "github.com/san-kum/automaton/internal/grid"

// Life is Conway's B3/S23 rule over the weighted neighbor sum.
type Life struct{}

func (Life) Name() string { return "life" }
func (Life) Binary() bool { return true }

func (Life) Next(x, y int, read grid.Buffer, _ grid.Meta) grid.Cell {
	n := grid.CountWeightedNeighbors(x, y, read)
	switch read.At(x, y) {
	case 1:
		if n == 2 || n == 3 {
			return 1
		}
	case 0:
		if n == 3 {
			return 1
		}
	}
	return 0
}

// HighLife survives on 1, 3 or 5 weighted neighbors and is born on 3.
type HighLife struct{}

func (HighLife) Name() string { return "highlife" }
func (HighLife) Binary() bool { return true }

func (HighLife) Next(x, y int, read grid.Buffer, _ grid.Meta) grid.Cell {
	n := grid.CountWeightedNeighbors(x, y, read)
	switch read.At(x, y) {
	case 1:
		if n == 1 || n == 3 || n == 5 {
			return 1
		}
	case 0:
		if n == 3 {
			return 1
		}
	}
	return 0
}
