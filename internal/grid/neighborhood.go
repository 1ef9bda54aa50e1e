package grid

// CountWeightedNeighbors sums the raw state values of the in-bounds Moore
// neighbors of (x, y). It is a live-neighbor count only when states == 2.
func CountWeightedNeighbors(x, y int, b Buffer) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= b.w {
				continue
			}
			sum += int(b.cells[ny*b.w+nx])
		}
	}
	return sum
}

// HasSuccessorNeighbor reports whether any in-bounds Moore neighbor of (x, y)
// holds the state following the cell's own, modulo states.
func HasSuccessorNeighbor(x, y int, b Buffer, states int) bool {
	target := (b.cells[y*b.w+x] + 1) % Cell(states)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= b.w {
				continue
			}
			if b.cells[ny*b.w+nx] == target {
				return true
			}
		}
	}
	return false
}

// NeighborCount returns how many Moore neighbors of (x, y) lie inside the buffer.
func NeighborCount(x, y int, b Buffer) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && b.InBounds(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}
